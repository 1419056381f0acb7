package empresa

import (
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	Listar(db *gorm.DB, escopo permissao.Escopo, pag utils.Paginacao) ([]Empresa, error)
	BuscarPorID(db *gorm.DB, codigo uint) (*Empresa, error)
	Existe(db *gorm.DB, codigo uint) (bool, error)
	Existentes(db *gorm.DB, codigos []uint) ([]uint, error)
	CNPJEmUso(db *gorm.DB, cnpj string, exceto uint) (bool, error)
	Criar(db *gorm.DB, e *Empresa) error
	Atualizar(db *gorm.DB, codigo uint, colunas map[string]interface{}) error
	Deletar(db *gorm.DB, codigo uint) error
	Dependentes(db *gorm.DB, codigo uint) (Dependentes, error)
}

// Dependentes conta os registros que impedem a exclusão de uma empresa
type Dependentes struct {
	Usuarios     int64
	Funcionarios int64
	Convocacoes  int64
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, escopo permissao.Escopo, pag utils.Paginacao) ([]Empresa, error) {
	var empresas []Empresa
	err := pag.Aplicar(escopo.Aplicar(db, "codigo")).
		Order("codigo").
		Find(&empresas).Error
	return empresas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, codigo uint) (*Empresa, error) {
	var e Empresa
	if err := db.First(&e, "codigo = ?", codigo).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) Existe(db *gorm.DB, codigo uint) (bool, error) {
	var n int64
	err := db.Model(&Empresa{}).Where("codigo = ?", codigo).Count(&n).Error
	return n > 0, err
}

// Existentes filtra os códigos que existem
func (r *repositoryImpl) Existentes(db *gorm.DB, codigos []uint) ([]uint, error) {
	var out []uint
	if len(codigos) == 0 {
		return out, nil
	}
	err := db.Model(&Empresa{}).Where("codigo IN ?", codigos).Pluck("codigo", &out).Error
	return out, err
}

func (r *repositoryImpl) CNPJEmUso(db *gorm.DB, cnpj string, exceto uint) (bool, error) {
	var n int64
	err := db.Model(&Empresa{}).Where("cnpj = ? AND codigo <> ?", cnpj, exceto).Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, codigo uint, colunas map[string]interface{}) error {
	if len(colunas) == 0 {
		return nil
	}
	return db.Model(&Empresa{}).Where("codigo = ?", codigo).Updates(colunas).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, codigo uint) error {
	return db.Delete(&Empresa{}, "codigo = ?", codigo).Error
}

func (r *repositoryImpl) Dependentes(db *gorm.DB, codigo uint) (Dependentes, error) {
	var d Dependentes
	var vinculos, principais int64
	if err := db.Table("usuario_empresa").Where("empresa_id = ?", codigo).Count(&vinculos).Error; err != nil {
		return d, err
	}
	if err := db.Table("usuarios").Where("empresa_principal_id = ?", codigo).Count(&principais).Error; err != nil {
		return d, err
	}
	d.Usuarios = vinculos + principais
	if err := db.Table("funcionarios").Where("codigoempresa = ?", codigo).Count(&d.Funcionarios).Error; err != nil {
		return d, err
	}
	if err := db.Table("convocacoes").Where("codigoempresa = ?", codigo).Count(&d.Convocacoes).Error; err != nil {
		return d, err
	}
	return d, nil
}
