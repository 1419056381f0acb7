package usuario

import (
	"time"

	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/permissao"
)

type Usuario struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	Nome               string            `gorm:"size:100;not null" json:"nome"`
	Email              string            `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash          string            `gorm:"column:senha_hash;size:255;not null" json:"-"`
	Tipo               permissao.Papel   `gorm:"size:20;not null" json:"tipo"`
	EmpresaPrincipalID *uint             `gorm:"column:empresa_principal_id" json:"empresa_principal_id"`
	DataCriacao        time.Time         `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	UltimoAcesso       *time.Time        `gorm:"column:ultimo_acesso" json:"ultimo_acesso"`
	Empresas           []empresa.Empresa `gorm:"many2many:usuario_empresa;joinForeignKey:UsuarioID;joinReferences:EmpresaID" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// Vinculo é a linha da tabela usuario_empresa
type Vinculo struct {
	UsuarioID uint `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	EmpresaID uint `gorm:"column:empresa_id;primaryKey;autoIncrement:false"`
}

func (Vinculo) TableName() string {
	return "usuario_empresa"
}

// EmpresasIDs lista os códigos das empresas vinculadas
func (u *Usuario) EmpresasIDs() []uint {
	ids := make([]uint, 0, len(u.Empresas))
	for _, e := range u.Empresas {
		ids = append(ids, e.Codigo)
	}
	return ids
}

// Identidade converte o usuário carregado (com Empresas) na identidade de autorização
func (u *Usuario) Identidade() permissao.Identidade {
	return permissao.Identidade{
		UsuarioID:          u.ID,
		Papel:              u.Tipo,
		EmpresaPrincipalID: u.EmpresaPrincipalID,
		Empresas:           u.EmpresasIDs(),
	}
}
