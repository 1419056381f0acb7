package permissao

import (
	"context"

	"github.com/grsnucleo/portal-grs/internal/apierr"
)

// Papel é o tipo (perfil) do usuário
type Papel string

const (
	Administrador Papel = "administrador"
	ClienteAdm    Papel = "clienteadm"
	Convocacao    Papel = "convocacao"
	Absenteismo   Papel = "absenteismo"
	Funcionarios  Papel = "funcionarios"
)

// Valido indica se o papel pertence ao conjunto fechado de perfis
func (p Papel) Valido() bool {
	switch p {
	case Administrador, ClienteAdm, Convocacao, Absenteismo, Funcionarios:
		return true
	}
	return false
}

// Identidade é o usuário autenticado da requisição
type Identidade struct {
	UsuarioID          uint
	Papel              Papel
	EmpresaPrincipalID *uint
	Empresas           []uint
}

func (i Identidade) Administrador() bool {
	return i.Papel == Administrador
}

type ctxKey string

const identidadeKey ctxKey = "identidade"

// ComIdentidade guarda a identidade no contexto
func ComIdentidade(ctx context.Context, id Identidade) context.Context {
	return context.WithValue(ctx, identidadeKey, id)
}

// IdentidadeDe recupera a identidade gravada pelo middleware de autenticação
func IdentidadeDe(ctx context.Context) (Identidade, bool) {
	id, ok := ctx.Value(identidadeKey).(Identidade)
	return id, ok
}

// Exigir devolve a identidade da requisição ou 401
func Exigir(ctx context.Context) (Identidade, error) {
	id, ok := IdentidadeDe(ctx)
	if !ok {
		return Identidade{}, apierr.Unauthorized("", nil)
	}
	return id, nil
}
