package logger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grsnucleo/portal-grs/internal/logger"
)

func TestNovo(t *testing.T) {
	log, err := logger.Novo("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = logger.Novo("verboso", true)
	assert.Error(t, err)
}

func TestRequisicoes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	var idNoHandler string
	h := logger.Requisicoes(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idNoHandler = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	t.Run("gera request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/empresas/99", nil))

		id := rec.Header().Get(logger.HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, idNoHandler)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
		assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
	})

	t.Run("reaproveita request id do cliente", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(logger.HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(logger.HeaderRequestID))
		assert.Equal(t, "abc-123", idNoHandler)
	})
}

func TestRecuperacao(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := logger.Recuperacao(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"erro interno do servidor"}`, rec.Body.String())
	assert.Equal(t, 1, logs.Len())
}

func TestEncadearRegistraPanicoComRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := logger.Encadear(zap.New(core), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/empresas", nil)
	req.Header.Set(logger.HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logs.TakeAll()
	require.Len(t, entries, 2)

	assert.Equal(t, "recuperado de pânico", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, "requisição", entries[1].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["status"])
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])
}
