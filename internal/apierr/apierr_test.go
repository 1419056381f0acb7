package apierr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"credenciais", apierr.ErrCredenciaisInvalidas, http.StatusUnauthorized},
		{"token", apierr.Unauthorized("", nil), http.StatusUnauthorized},
		{"proibido", apierr.Forbidden("sem permissão"), http.StatusForbidden},
		{"não encontrado", apierr.NotFound("funcionário não encontrado"), http.StatusNotFound},
		{"empresa não encontrada", apierr.New(apierr.ErrEmpresaNaoEncontrada, "", nil), http.StatusNotFound},
		{"duplicado", apierr.Duplicado("CNPJ já cadastrado", nil), http.StatusBadRequest},
		{"dependentes", apierr.ErrEmpresaComDependentes, http.StatusBadRequest},
		{"auto exclusão", apierr.ErrAutoExclusao, http.StatusBadRequest},
		{"embrulhado", fmt.Errorf("criar: %w", apierr.ErrProibido), http.StatusForbidden},
		{"desconhecido", errors.New("conexão recusada"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apierr.Status(tt.err))
		})
	}
}

func TestAPIErrorIs(t *testing.T) {
	causa := errors.New("pg: 23505")
	err := apierr.Duplicado("email já cadastrado", causa)

	assert.ErrorIs(t, err, apierr.ErrChaveDuplicada)
	assert.ErrorIs(t, err, causa)
	assert.NotErrorIs(t, err, apierr.ErrValidacao)
	assert.Equal(t, "email já cadastrado: pg: 23505", err.Error())
}

func TestResponder(t *testing.T) {
	t.Run("401 traz desafio Bearer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		apierr.Responder(rec, zaptest.NewLogger(t), apierr.ErrCredenciaisInvalidas)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "email ou senha incorretos", body["detail"])
	})

	t.Run("erro inesperado não vaza detalhes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		apierr.Responder(rec, zaptest.NewLogger(t), errors.New("dial tcp 10.0.0.1:5432"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"detail":"erro interno do servidor"}`, rec.Body.String())
	})
}
