package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/grsnucleo/portal-grs/internal/apierr"
)

// Presentes guarda as chaves enviadas no corpo de uma atualização parcial
type Presentes map[string]bool

func (p Presentes) Tem(chave string) bool { return p[chave] }

// DecodificarParcial lê o corpo JSON em dst e registra quais chaves vieram
func DecodificarParcial(body io.Reader, dst interface{}) (Presentes, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, apierr.BadRequest("payload inválido", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var campos map[string]json.RawMessage
	if err := json.Unmarshal(raw, &campos); err != nil {
		return nil, apierr.BadRequest("payload inválido", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, apierr.BadRequest(mensagemJSON(err), err)
	}

	presentes := make(Presentes, len(campos))
	for k := range campos {
		presentes[k] = true
	}
	return presentes, nil
}

// DecodificarAtualizacao lê o corpo de um PUT e valida formato e nulos antes de qualquer
// verificação de permissão
func DecodificarAtualizacao(r *http.Request, dst interface{}) (Presentes, error) {
	presentes, err := DecodificarParcial(r.Body, dst)
	if err != nil {
		return nil, err
	}
	if err := Validar(dst); err != nil {
		return nil, err
	}
	if _, err := Colunas(dst, presentes); err != nil {
		return nil, err
	}
	return presentes, nil
}

// Colunas monta o mapa coluna -> valor apenas com os campos presentes.
//
// A coluna é o nome JSON do campo (ou a tag coluna). Ponteiro nil vira NULL,
// a não ser que o campo tenha parcial:"naonulo". parcial:"-" ignora o campo.
// Structs embutidas são percorridas como se seus campos fossem do DTO.
func Colunas(dto interface{}, presentes Presentes) (map[string]interface{}, error) {
	cols := make(map[string]interface{})
	if err := colunas(reflect.Indirect(reflect.ValueOf(dto)), presentes, cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func colunas(v reflect.Value, presentes Presentes, cols map[string]interface{}) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
			if err := colunas(v.Field(i), presentes, cols); err != nil {
				return err
			}
			continue
		}
		nome := strings.Split(f.Tag.Get("json"), ",")[0]
		if nome == "" || nome == "-" || !presentes.Tem(nome) {
			continue
		}
		opcao := f.Tag.Get("parcial")
		if opcao == "-" {
			continue
		}
		coluna := nome
		if c := f.Tag.Get("coluna"); c != "" {
			coluna = c
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				if opcao == "naonulo" {
					return apierr.BadRequest(fmt.Sprintf("campo '%s' não pode ser nulo", nome), nil)
				}
				cols[coluna] = nil
				continue
			}
			fv = fv.Elem()
		}
		cols[coluna] = fv.Interface()
	}
	return nil
}

func mensagemJSON(err error) string {
	var tipo *json.UnmarshalTypeError
	if errors.As(err, &tipo) && tipo.Field != "" {
		return fmt.Sprintf("campo '%s' com tipo inválido", tipo.Field)
	}
	return "payload inválido: " + err.Error()
}
