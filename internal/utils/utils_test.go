package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type atualizacaoTeste struct {
	Nome       *string     `json:"nome" parcial:"naonulo"`
	Cidade     *string     `json:"cidade"`
	Nascimento *utils.Data `json:"data_nascimento"`
	Ativo      *int        `json:"ativo" validate:"omitempty,oneof=0 1"`
	Senha      *string     `json:"senha" parcial:"-"`
	Matricula  *string     `json:"matricula" coluna:"matricula_func"`
}

func TestSenha(t *testing.T) {
	hash, err := utils.HashSenha("s3nh@forte")
	require.NoError(t, err)
	assert.True(t, utils.VerificarSenha(hash, "s3nh@forte"))
	assert.False(t, utils.VerificarSenha(hash, "outra"))

	temp, err := utils.GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, temp, 16)
}

func TestData(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var d utils.Data
		require.NoError(t, json.Unmarshal([]byte(`"1990-05-17"`), &d))
		assert.Equal(t, "1990-05-17", d.String())

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"1990-05-17"`, string(out))

		assert.Error(t, json.Unmarshal([]byte(`"17/05/1990"`), &d))
	})

	t.Run("scan", func(t *testing.T) {
		var d utils.Data
		require.NoError(t, d.Scan(time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)))
		assert.Equal(t, "2024-03-01", d.String())

		require.NoError(t, d.Scan("2023-12-31 00:00:00+00:00"))
		assert.Equal(t, "2023-12-31", d.String())

		require.NoError(t, d.Scan([]byte("2022-01-02")))
		assert.Equal(t, "2022-01-02", d.String())

		assert.Error(t, d.Scan(42))
	})

	t.Run("value", func(t *testing.T) {
		v, err := utils.NovaData(2020, time.February, 29).Value()
		require.NoError(t, err)
		assert.Equal(t, "2020-02-29", v)
	})
}

func TestColunasSoComCamposPresentes(t *testing.T) {
	body := `{"cidade": null, "ativo": 0, "data_nascimento": "2001-01-31", "senha": "x", "matricula": "M-1", "desconhecido": 1}`
	var dto atualizacaoTeste
	presentes, err := utils.DecodificarParcial(strings.NewReader(body), &dto)
	require.NoError(t, err)

	cols, err := utils.Colunas(&dto, presentes)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"cidade":          nil,
		"ativo":           0,
		"data_nascimento": utils.NovaData(2001, time.January, 31),
		"matricula_func":  "M-1",
	}, cols)
}

func TestColunasCorpoVazio(t *testing.T) {
	for _, body := range []string{"", "{}", "  "} {
		var dto atualizacaoTeste
		presentes, err := utils.DecodificarParcial(strings.NewReader(body), &dto)
		require.NoError(t, err)

		cols, err := utils.Colunas(&dto, presentes)
		require.NoError(t, err)
		assert.Empty(t, cols)
	}
}

func TestColunasNaoNulo(t *testing.T) {
	var dto atualizacaoTeste
	presentes, err := utils.DecodificarParcial(strings.NewReader(`{"nome": null}`), &dto)
	require.NoError(t, err)

	_, err = utils.Colunas(&dto, presentes)
	assert.ErrorIs(t, err, apierr.ErrValidacao)
}

func TestDecodificarParcialInvalido(t *testing.T) {
	var dto atualizacaoTeste
	_, err := utils.DecodificarParcial(strings.NewReader(`[1,2]`), &dto)
	assert.ErrorIs(t, err, apierr.ErrValidacao)

	_, err = utils.DecodificarParcial(strings.NewReader(`{"ativo": "sim"}`), &dto)
	assert.ErrorIs(t, err, apierr.ErrValidacao)
}

func TestValidar(t *testing.T) {
	dois := 2
	err := utils.Validar(atualizacaoTeste{Ativo: &dois})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrValidacao)
	assert.Contains(t, apierr.Mensagem(err), "ativo")

	assert.NoError(t, utils.Validar(atualizacaoTeste{}))
}

func TestPaginacaoDe(t *testing.T) {
	p, err := utils.PaginacaoDe(httptest.NewRequest("GET", "/empresas/", nil))
	require.NoError(t, err)
	assert.Equal(t, utils.Paginacao{Skip: 0, Limit: 100}, p)

	p, err = utils.PaginacaoDe(httptest.NewRequest("GET", "/empresas/?skip=20&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, utils.Paginacao{Skip: 20, Limit: 5}, p)

	_, err = utils.PaginacaoDe(httptest.NewRequest("GET", "/empresas/?limit=0", nil))
	assert.ErrorIs(t, err, apierr.ErrValidacao)

	_, err = utils.PaginacaoDe(httptest.NewRequest("GET", "/empresas/?skip=-1", nil))
	assert.ErrorIs(t, err, apierr.ErrValidacao)
}

func TestQueryFiltros(t *testing.T) {
	r := httptest.NewRequest("GET", "/convocacoes/?empresa_id=10&refazer=1&data_inicio=2024-01-01", nil)

	empresa, err := utils.QueryUint(r, "empresa_id")
	require.NoError(t, err)
	require.NotNil(t, empresa)
	assert.Equal(t, uint(10), *empresa)

	refazer, err := utils.QueryInt(r, "refazer")
	require.NoError(t, err)
	assert.Equal(t, 1, *refazer)

	inicio, err := utils.QueryData(r, "data_inicio")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", inicio.String())

	ausente, err := utils.QueryUint(r, "funcionario_id")
	require.NoError(t, err)
	assert.Nil(t, ausente)

	_, err = utils.QueryData(httptest.NewRequest("GET", "/?data_fim=ontem", nil), "data_fim")
	assert.ErrorIs(t, err, apierr.ErrValidacao)
}

type Endereco struct {
	Rua    *string `json:"endereco"`
	Numero *string `json:"numero_endereco"`
}

type comEmbutido struct {
	Nome *string `json:"nome" parcial:"naonulo"`
	Endereco
}

func TestColunasStructEmbutida(t *testing.T) {
	var dto comEmbutido
	presentes, err := utils.DecodificarParcial(strings.NewReader(`{"endereco": "Rua A", "numero_endereco": null}`), &dto)
	require.NoError(t, err)

	cols, err := utils.Colunas(&dto, presentes)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"endereco": "Rua A", "numero_endereco": nil}, cols)
}

func TestIDDaRota(t *testing.T) {
	casos := []struct {
		id     string
		want   uint
		status int
	}{
		{"42", 42, 0},
		{"0", 0, http.StatusNotFound},
		{"99999999999999999999", 0, http.StatusNotFound},
		{"4294967296", 0, http.StatusNotFound},
		{"", 0, http.StatusBadRequest},
	}
	for _, c := range casos {
		t.Run(c.id, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest("GET", "/x", nil), map[string]string{"id": c.id})
			id, err := utils.IDDaRota(r)
			if c.status == 0 {
				require.NoError(t, err)
				assert.Equal(t, c.want, id)
				return
			}
			assert.Equal(t, c.status, apierr.Status(err))
		})
	}
}

func TestDecodificarAtualizacao(t *testing.T) {
	t.Run("nulo em campo obrigatório", func(t *testing.T) {
		var dto atualizacaoTeste
		_, err := utils.DecodificarAtualizacao(httptest.NewRequest("PUT", "/x", strings.NewReader(`{"nome": null}`)), &dto)
		assert.ErrorIs(t, err, apierr.ErrValidacao)
	})

	t.Run("valor fora da regra", func(t *testing.T) {
		var dto atualizacaoTeste
		_, err := utils.DecodificarAtualizacao(httptest.NewRequest("PUT", "/x", strings.NewReader(`{"ativo": 3}`)), &dto)
		assert.ErrorIs(t, err, apierr.ErrValidacao)
	})

	t.Run("válido", func(t *testing.T) {
		var dto atualizacaoTeste
		presentes, err := utils.DecodificarAtualizacao(httptest.NewRequest("PUT", "/x", strings.NewReader(`{"cidade": null, "ativo": 0}`)), &dto)
		require.NoError(t, err)
		assert.True(t, presentes.Tem("cidade"))
		assert.True(t, presentes.Tem("ativo"))
		assert.Nil(t, dto.Cidade)
	})
}
