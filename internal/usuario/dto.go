package usuario

import (
	"time"

	"github.com/grsnucleo/portal-grs/internal/permissao"
)

type CriarUsuarioRequest struct {
	Nome               string          `json:"nome" validate:"required,max=100"`
	Email              string          `json:"email" validate:"required,email,max=100"`
	Senha              string          `json:"senha" validate:"required"`
	Tipo               permissao.Papel `json:"tipo" validate:"required,oneof=administrador clienteadm convocacao absenteismo funcionarios"`
	EmpresaPrincipalID *uint           `json:"empresa_principal_id"`
	EmpresasIDs        []uint          `json:"empresas_ids"`
}

// AtualizarUsuarioRequest: senha e empresas_ids são tratados à parte
type AtualizarUsuarioRequest struct {
	Nome               *string          `json:"nome" validate:"omitempty,max=100" parcial:"naonulo"`
	Email              *string          `json:"email" validate:"omitempty,email,max=100" parcial:"naonulo"`
	Senha              *string          `json:"senha" validate:"omitempty,min=1" parcial:"-"`
	Tipo               *permissao.Papel `json:"tipo" validate:"omitempty,oneof=administrador clienteadm convocacao absenteismo funcionarios" parcial:"naonulo"`
	EmpresaPrincipalID *uint            `json:"empresa_principal_id"`
	EmpresasIDs        []uint           `json:"empresas_ids" parcial:"-"`
}

type UsuarioResponse struct {
	ID                 uint            `json:"id"`
	Nome               string          `json:"nome"`
	Email              string          `json:"email"`
	Tipo               permissao.Papel `json:"tipo"`
	EmpresaPrincipalID *uint           `json:"empresa_principal_id"`
	EmpresasIDs        []uint          `json:"empresas_ids"`
	DataCriacao        time.Time       `json:"data_criacao"`
	UltimoAcesso       *time.Time      `json:"ultimo_acesso"`
}

func NovaResposta(u *Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:                 u.ID,
		Nome:               u.Nome,
		Email:              u.Email,
		Tipo:               u.Tipo,
		EmpresaPrincipalID: u.EmpresaPrincipalID,
		EmpresasIDs:        u.EmpresasIDs(),
		DataCriacao:        u.DataCriacao,
		UltimoAcesso:       u.UltimoAcesso,
	}
}

func NovasRespostas(usuarios []Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, NovaResposta(&usuarios[i]))
	}
	return out
}
