package empresa_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/testutil"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

func atualizacao(t *testing.T, body string) (empresa.AtualizarEmpresaRequest, utils.Presentes) {
	t.Helper()
	var req empresa.AtualizarEmpresaRequest
	presentes, err := utils.DecodificarParcial(strings.NewReader(body), &req)
	require.NoError(t, err)
	return req, presentes
}

func TestCriarEmpresa(t *testing.T) {
	ctx := context.Background()
	s := empresa.NewService(testutil.NovoBanco(t))

	e, err := s.Criar(ctx, testutil.Admin(), empresa.CriarEmpresaRequest{
		NomeAbreviado: "ACME",
		RazaoSocial:   "Acme Ltda",
		CNPJ:          "11222333000181",
		Ativo:         testutil.Ptr(0),
	})
	require.NoError(t, err)
	assert.NotZero(t, e.Codigo)
	assert.Equal(t, 0, e.Ativo)

	lida, err := s.Buscar(ctx, testutil.Admin(), e.Codigo)
	require.NoError(t, err)
	assert.Equal(t, 0, lida.Ativo)

	t.Run("cnpj duplicado", func(t *testing.T) {
		_, err := s.Criar(ctx, testutil.Admin(), empresa.CriarEmpresaRequest{
			NomeAbreviado: "OUTRA", RazaoSocial: "Outra", CNPJ: "11222333000181",
		})
		assert.ErrorIs(t, err, apierr.ErrChaveDuplicada)
	})

	t.Run("ativo padrão", func(t *testing.T) {
		e, err := s.Criar(ctx, testutil.Admin(), empresa.CriarEmpresaRequest{
			NomeAbreviado: "NOVA", RazaoSocial: "Nova", CNPJ: "123",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, e.Ativo)
		assert.NotZero(t, e.Codigo)
	})

	t.Run("somente administrador", func(t *testing.T) {
		_, err := s.Criar(ctx, testutil.Identidade(2, permissao.ClienteAdm, 10), empresa.CriarEmpresaRequest{
			NomeAbreviado: "Y", RazaoSocial: "Y", CNPJ: "456",
		})
		assert.ErrorIs(t, err, apierr.ErrProibido)
	})
}

func TestListarEmpresasPorEscopo(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	for _, c := range []uint{10, 20, 30} {
		testutil.CriarEmpresa(t, conn, c)
	}
	s := empresa.NewService(conn)
	pag := utils.Paginacao{Limit: 100}

	todas, err := s.Listar(ctx, testutil.Admin(), pag)
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	visiveis, err := s.Listar(ctx, testutil.Identidade(5, permissao.Convocacao, 10, 30), pag)
	require.NoError(t, err)
	require.Len(t, visiveis, 2)
	assert.Equal(t, uint(10), visiveis[0].Codigo)
	assert.Equal(t, uint(30), visiveis[1].Codigo)

	nenhuma, err := s.Listar(ctx, testutil.Identidade(6, permissao.Funcionarios), pag)
	require.NoError(t, err)
	assert.Empty(t, nenhuma)

	pagina, err := s.Listar(ctx, testutil.Admin(), utils.Paginacao{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, pagina, 1)
	assert.Equal(t, uint(20), pagina[0].Codigo)
}

func TestBuscarEmpresaOrdemDasVerificacoes(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	testutil.CriarEmpresa(t, conn, 10)
	testutil.CriarEmpresa(t, conn, 20)
	s := empresa.NewService(conn)
	cliente := testutil.Identidade(2, permissao.ClienteAdm, 10)

	_, err := s.Buscar(ctx, cliente, 10)
	assert.NoError(t, err)

	_, err = s.Buscar(ctx, cliente, 20)
	assert.ErrorIs(t, err, apierr.ErrProibido)

	_, err = s.Buscar(ctx, cliente, 99)
	assert.ErrorIs(t, err, apierr.ErrNaoEncontrado)
}

func TestAtualizarEmpresaParcial(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	original := testutil.CriarEmpresa(t, conn, 10)
	testutil.CriarEmpresa(t, conn, 20)
	s := empresa.NewService(conn)

	t.Run("corpo vazio não altera nada", func(t *testing.T) {
		req, presentes := atualizacao(t, `{}`)
		e, err := s.Atualizar(ctx, testutil.Admin(), 10, req, presentes)
		require.NoError(t, err)
		assert.Equal(t, *original, *e)
	})

	t.Run("só a cidade", func(t *testing.T) {
		req, presentes := atualizacao(t, `{"cidade": "Recife"}`)
		e, err := s.Atualizar(ctx, testutil.Admin(), 10, req, presentes)
		require.NoError(t, err)
		require.NotNil(t, e.Cidade)
		assert.Equal(t, "Recife", *e.Cidade)
		assert.Equal(t, original.RazaoSocial, e.RazaoSocial)
		assert.Equal(t, original.CNPJ, e.CNPJ)
	})

	t.Run("null limpa campo opcional", func(t *testing.T) {
		req, presentes := atualizacao(t, `{"cidade": null}`)
		e, err := s.Atualizar(ctx, testutil.Admin(), 10, req, presentes)
		require.NoError(t, err)
		assert.Nil(t, e.Cidade)
	})

	t.Run("cnpj de outra empresa", func(t *testing.T) {
		req, presentes := atualizacao(t, `{"cnpj": "00000000000020"}`)
		_, err := s.Atualizar(ctx, testutil.Admin(), 10, req, presentes)
		assert.ErrorIs(t, err, apierr.ErrChaveDuplicada)
	})

	t.Run("inexistente", func(t *testing.T) {
		req, presentes := atualizacao(t, `{"cidade": "x"}`)
		_, err := s.Atualizar(ctx, testutil.Admin(), 99, req, presentes)
		assert.ErrorIs(t, err, apierr.ErrNaoEncontrado)
	})
}

func TestDeletarEmpresaComDependentes(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NovoBanco(t)
	for _, c := range []uint{10, 20, 30, 40} {
		testutil.CriarEmpresa(t, conn, c)
	}
	testutil.CriarUsuario(t, conn, "vinculo@grs.com", permissao.Convocacao, nil, 10)
	testutil.CriarUsuario(t, conn, "principal@grs.com", permissao.Convocacao, testutil.Ptr(uint(20)))
	testutil.CriarFuncionario(t, conn, 1, 30, "M1")
	s := empresa.NewService(conn)

	for _, codigo := range []uint{10, 20, 30} {
		err := s.Deletar(ctx, testutil.Admin(), codigo)
		assert.ErrorIs(t, err, apierr.ErrEmpresaComDependentes, "empresa %d", codigo)
	}

	require.NoError(t, s.Deletar(ctx, testutil.Admin(), 40))
	_, err := s.Buscar(ctx, testutil.Admin(), 40)
	assert.ErrorIs(t, err, apierr.ErrNaoEncontrado)

	err = s.Deletar(ctx, testutil.Identidade(2, permissao.ClienteAdm, 10), 10)
	assert.ErrorIs(t, err, apierr.ErrProibido)
}
