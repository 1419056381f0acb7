package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/grsnucleo/portal-grs/internal/apierr"
	"gorm.io/gorm"
)

const (
	limitePadrao = 100
	limiteMaximo = 1000
)

var validate = novoValidador()

func novoValidador() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		nome := strings.Split(f.Tag.Get("json"), ",")[0]
		if nome == "-" {
			return ""
		}
		return nome
	})
	return v
}

// Validar aplica as tags validate do DTO
func Validar(dto interface{}) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var erros validator.ValidationErrors
	if !errors.As(err, &erros) || len(erros) == 0 {
		return apierr.BadRequest("dados inválidos", err)
	}
	fe := erros[0]
	return apierr.BadRequest(fmt.Sprintf("campo '%s' inválido (%s)", fe.Field(), regra(fe)), err)
}

func regra(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "obrigatório"
	case "oneof":
		return "valores aceitos: " + fe.Param()
	case "len":
		return "deve ter " + fe.Param() + " caracteres"
	case "max":
		return "máximo " + fe.Param()
	case "min":
		return "mínimo " + fe.Param()
	case "email":
		return "email inválido"
	}
	return fe.Tag()
}

// Decodificar lê o corpo JSON e valida o DTO
func Decodificar(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.BadRequest(mensagemJSON(err), err)
	}
	return Validar(dst)
}

// JSON escreve a resposta com o status informado
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// IDDaRota lê o parâmetro {id} da rota
func IDDaRota(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if errors.Is(err, strconv.ErrRange) || (err == nil && id == 0) {
		// nenhum registro tem esse id
		return 0, apierr.NotFound("registro não encontrado")
	}
	if err != nil {
		return 0, apierr.BadRequest("ID inválido", err)
	}
	return uint(id), nil
}

// Paginacao corresponde aos parâmetros skip e limit
type Paginacao struct {
	Skip  int
	Limit int
}

func PaginacaoDe(r *http.Request) (Paginacao, error) {
	p := Paginacao{Limit: limitePadrao}
	q := r.URL.Query()
	if s := q.Get("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return p, apierr.BadRequest("parâmetro 'skip' inválido", err)
		}
		p.Skip = n
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > limiteMaximo {
			return p, apierr.BadRequest(fmt.Sprintf("parâmetro 'limit' deve estar entre 1 e %d", limiteMaximo), err)
		}
		p.Limit = n
	}
	return p, nil
}

func (p Paginacao) Aplicar(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Skip).Limit(p.Limit)
}

// QueryUint lê um filtro numérico opcional
func QueryUint(r *http.Request, nome string) (*uint, error) {
	s := r.URL.Query().Get(nome)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, apierr.BadRequest(fmt.Sprintf("parâmetro '%s' inválido", nome), err)
	}
	v := uint(n)
	return &v, nil
}

// QueryInt lê um filtro inteiro opcional
func QueryInt(r *http.Request, nome string) (*int, error) {
	s := r.URL.Query().Get(nome)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, apierr.BadRequest(fmt.Sprintf("parâmetro '%s' inválido", nome), err)
	}
	return &n, nil
}

// QueryData lê um filtro de data opcional
func QueryData(r *http.Request, nome string) (*Data, error) {
	s := r.URL.Query().Get(nome)
	if s == "" {
		return nil, nil
	}
	d, err := ParseData(s)
	if err != nil {
		return nil, apierr.BadRequest(fmt.Sprintf("parâmetro '%s': %v", nome, err), err)
	}
	return &d, nil
}

// StatusWriter guarda o status e o tamanho da resposta
type StatusWriter struct {
	http.ResponseWriter
	Status int
	Bytes  int
}

func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, Status: http.StatusOK}
}

func (w *StatusWriter) WriteHeader(code int) {
	w.Status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *StatusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.Bytes += n
	return n, err
}
