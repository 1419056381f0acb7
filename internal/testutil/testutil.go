// Package testutil monta banco SQLite em memória e cadastros usados nos testes
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grsnucleo/portal-grs/internal/app"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/funcionario"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/usuario"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

// Segredo é o JWT_SECRET dos testes
const Segredo = "segredo-de-teste-com-mais-de-32-bytes"

// SenhaPadrao é a senha dos usuários criados por CriarUsuario
const SenhaPadrao = "senha-de-teste"

// NovoBanco abre um SQLite em memória exclusivo do teste, já migrado
func NovoBanco(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.ConnectDataBase(context.Background(), db.Config{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 1,
		LogLevel:     logger.Silent,
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, app.Migrar(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

func Logger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}

func Ptr[T any](v T) *T {
	return &v
}

func CriarEmpresa(t testing.TB, conn *gorm.DB, codigo uint) *empresa.Empresa {
	t.Helper()
	e := &empresa.Empresa{
		Codigo:        codigo,
		NomeAbreviado: fmt.Sprintf("EMP%d", codigo),
		RazaoSocial:   fmt.Sprintf("Empresa %d Ltda", codigo),
		CNPJ:          fmt.Sprintf("%014d", codigo),
		Ativo:         1,
	}
	require.NoError(t, conn.Create(e).Error)
	return e
}

func CriarFuncionario(t testing.TB, conn *gorm.DB, codigo, codigoEmpresa uint, matricula string) *funcionario.Funcionario {
	t.Helper()
	f := &funcionario.Funcionario{
		Codigo:        codigo,
		CodigoEmpresa: codigoEmpresa,
		Nome:          fmt.Sprintf("Funcionário %d", codigo),
	}
	if matricula != "" {
		f.Matricula = Ptr(matricula)
	}
	require.NoError(t, conn.Create(f).Error)
	return f
}

// CriarUsuario grava o usuário com SenhaPadrao; empresas vão para usuario_empresa
func CriarUsuario(t testing.TB, conn *gorm.DB, email string, papel permissao.Papel, principal *uint, empresas ...uint) *usuario.Usuario {
	t.Helper()
	hash, err := utils.HashSenha(SenhaPadrao)
	require.NoError(t, err)
	u := &usuario.Usuario{
		Nome:               email,
		Email:              email,
		SenhaHash:          hash,
		Tipo:               papel,
		EmpresaPrincipalID: principal,
	}
	repo := usuario.NewRepository()
	require.NoError(t, repo.Criar(conn, u, empresas))
	carregado, err := repo.BuscarPorID(conn, u.ID)
	require.NoError(t, err)
	return carregado
}

// Identidade monta uma identidade sem passar pelo banco
func Identidade(id uint, papel permissao.Papel, empresas ...uint) permissao.Identidade {
	return permissao.Identidade{UsuarioID: id, Papel: papel, Empresas: empresas}
}

func Admin() permissao.Identidade {
	return Identidade(1, permissao.Administrador)
}
