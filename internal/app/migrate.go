package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/absenteismo"
	"github.com/grsnucleo/portal-grs/internal/convocacao"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/funcionario"
	"github.com/grsnucleo/portal-grs/internal/usuario"
)

// Migrar cria ou atualiza as tabelas da API
func Migrar(db *gorm.DB) error {
	if err := db.SetupJoinTable(&usuario.Usuario{}, "Empresas", &usuario.Vinculo{}); err != nil {
		return fmt.Errorf("erro ao configurar usuario_empresa: %w", err)
	}
	if err := db.AutoMigrate(
		&empresa.Empresa{},
		&usuario.Usuario{},
		&usuario.Vinculo{},
		&funcionario.Funcionario{},
		&convocacao.Convocacao{},
		&absenteismo.Absenteismo{},
	); err != nil {
		return fmt.Errorf("erro no AutoMigrate: %w", err)
	}
	return nil
}
