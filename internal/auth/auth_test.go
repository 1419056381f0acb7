package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/auth"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/testutil"
	"github.com/grsnucleo/portal-grs/internal/usuario"
)

func TestEmissor(t *testing.T) {
	e := auth.NovoEmissor(testutil.Segredo, time.Minute)

	token, exp, err := e.Gerar(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 2*time.Second)

	id, err := e.Validar(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	t.Run("segredo diferente", func(t *testing.T) {
		_, err := auth.NovoEmissor("outro-segredo-com-mais-de-32-bytes!!", time.Minute).Validar(token)
		assert.Error(t, err)
	})

	t.Run("expirado", func(t *testing.T) {
		curto := auth.NovoEmissor(testutil.Segredo, time.Nanosecond)
		token, _, err := curto.Gerar(42)
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
		_, err = curto.Validar(token)
		assert.Error(t, err)
	})

	t.Run("sem exp", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}).
			SignedString([]byte(testutil.Segredo))
		require.NoError(t, err)
		_, err = e.Validar(token)
		assert.Error(t, err)
	})

	t.Run("algoritmo diferente", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte(testutil.Segredo))
		require.NoError(t, err)
		_, err = e.Validar(token)
		assert.Error(t, err)
	})

	t.Run("sub não numérico", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin@grs.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte(testutil.Segredo))
		require.NoError(t, err)
		_, err = e.Validar(token)
		assert.Error(t, err)
	})
}

func TestAutenticar(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	testutil.CriarEmpresa(t, conn, 10)
	u := testutil.CriarUsuario(t, conn, "clerk@grs.com", permissao.Convocacao, nil, 10)
	s := auth.NewService(conn, auth.NovoEmissor(testutil.Segredo, 30*time.Minute))

	for i := 0; i < 2; i++ {
		_, err := s.Autenticar(ctx, "clerk@grs.com", "errada")
		assert.ErrorIs(t, err, apierr.ErrCredenciaisInvalidas)
	}
	_, err := s.Autenticar(ctx, "ninguem@grs.com", testutil.SenhaPadrao)
	assert.ErrorIs(t, err, apierr.ErrCredenciaisInvalidas)

	var depoisDasFalhas usuario.Usuario
	require.NoError(t, conn.First(&depoisDasFalhas, u.ID).Error)
	assert.Nil(t, depoisDasFalhas.UltimoAcesso)

	token, err := s.Autenticar(ctx, "clerk@grs.com", testutil.SenhaPadrao)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, 1800, token.ExpiresIn)

	var depoisDoLogin usuario.Usuario
	require.NoError(t, conn.First(&depoisDoLogin, u.ID).Error)
	assert.NotNil(t, depoisDoLogin.UltimoAcesso)

	resolvido, err := s.Resolver(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolvido.ID)
	assert.Equal(t, []uint{10}, resolvido.Identidade().Empresas)
}

func TestResolverUsuarioRemovido(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	u := testutil.CriarUsuario(t, conn, "tmp@grs.com", permissao.Funcionarios, nil)
	s := auth.NewService(conn, auth.NovoEmissor(testutil.Segredo, time.Minute))

	token, err := s.Autenticar(ctx, "tmp@grs.com", testutil.SenhaPadrao)
	require.NoError(t, err)
	require.NoError(t, usuario.NewRepository().Deletar(conn, u.ID))

	_, err = s.Resolver(ctx, token.AccessToken)
	assert.ErrorIs(t, err, apierr.ErrTokenInvalido)

	_, err = s.Resolver(ctx, "lixo")
	assert.ErrorIs(t, err, apierr.ErrTokenInvalido)
	assert.Equal(t, 401, apierr.Status(err))
}
