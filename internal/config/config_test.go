package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grsnucleo/portal-grs/internal/config"
)

const segredo = "0123456789abcdef0123456789abcdef"

func limparAmbiente(t *testing.T) {
	for _, k := range []string{
		"JWT_SECRET", "TOKEN_TTL", "PORT", "CORS_ALLOWED_ORIGINS",
		"DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_USERNAME", "DB_PASSWORD", "DB_SSL_MODE_DISABLE",
		"LOG_LEVEL", "METRICS_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadPadroes(t *testing.T) {
	limparAmbiente(t)
	t.Setenv("JWT_SECRET", segredo)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("DB_USERNAME", "grs")
	t.Setenv("DB_PASSWORD", "senha")
	t.Setenv("DB_SSL_MODE_DISABLE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Porta)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigens)
	assert.Equal(t, "postgres", cfg.Banco.Driver)
	assert.Equal(t, "host=localhost user=grs password=senha dbname=portal port=5432 sslmode=disable", cfg.Banco.DSN())
	assert.True(t, cfg.Metricas.Habilitado)
	assert.Equal(t, "/metrics", cfg.Metricas.Caminho)
}

func TestLoadDatabaseURL(t *testing.T) {
	limparAmbiente(t)
	t.Setenv("JWT_SECRET", segredo)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:portal.db")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "file:portal.db", cfg.Banco.ConexaoDB().DSN)
	assert.Equal(t, "sqlite", cfg.Banco.ConexaoDB().Driver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigens)
}

func TestLoadExigeSegredoEBanco(t *testing.T) {
	t.Run("sem segredo", func(t *testing.T) {
		limparAmbiente(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/portal")
		_, err := config.Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("segredo curto", func(t *testing.T) {
		limparAmbiente(t)
		t.Setenv("JWT_SECRET", "curto")
		t.Setenv("DATABASE_URL", "postgres://localhost/portal")
		_, err := config.Load()
		assert.ErrorContains(t, err, "ao menos 32")
	})

	t.Run("sem banco", func(t *testing.T) {
		limparAmbiente(t)
		t.Setenv("JWT_SECRET", segredo)
		_, err := config.Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("driver desconhecido", func(t *testing.T) {
		limparAmbiente(t)
		t.Setenv("JWT_SECRET", segredo)
		t.Setenv("DB_DRIVER", "oracle")
		t.Setenv("DATABASE_URL", "x")
		_, err := config.Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
}
