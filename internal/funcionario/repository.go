package funcionario

import (
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/permissao"
)

type Repository interface {
	Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Funcionario, error)
	BuscarPorID(db *gorm.DB, codigo uint) (*Funcionario, error)
	BuscarPorMatricula(db *gorm.DB, matricula string) (*Funcionario, error)
	MatriculaEmUso(db *gorm.DB, matricula string, exceto uint) (bool, error)
	Criar(db *gorm.DB, f *Funcionario) error
	Atualizar(db *gorm.DB, codigo uint, colunas map[string]interface{}) error
	Deletar(db *gorm.DB, codigo uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Funcionario, error) {
	q := escopo.Aplicar(db, "codigoempresa")
	if filtro.EmpresaID != nil {
		q = q.Where("codigoempresa = ?", *filtro.EmpresaID)
	}
	var funcionarios []Funcionario
	err := filtro.Paginacao.Aplicar(q).Order("codigo").Find(&funcionarios).Error
	return funcionarios, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, codigo uint) (*Funcionario, error) {
	var f Funcionario
	if err := db.First(&f, "codigo = ?", codigo).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) BuscarPorMatricula(db *gorm.DB, matricula string) (*Funcionario, error) {
	var f Funcionario
	if err := db.Where("matriculafuncionario = ?", matricula).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) MatriculaEmUso(db *gorm.DB, matricula string, exceto uint) (bool, error) {
	var n int64
	err := db.Model(&Funcionario{}).
		Where("matriculafuncionario = ? AND codigo <> ?", matricula, exceto).
		Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Funcionario) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, codigo uint, colunas map[string]interface{}) error {
	if len(colunas) == 0 {
		return nil
	}
	return db.Model(&Funcionario{}).Where("codigo = ?", codigo).Updates(colunas).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, codigo uint) error {
	return db.Delete(&Funcionario{}, "codigo = ?", codigo).Error
}
