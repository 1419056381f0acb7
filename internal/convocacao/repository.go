package convocacao

import (
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/permissao"
)

type Repository interface {
	Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Convocacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Convocacao, error)
	Criar(db *gorm.DB, c *Convocacao) error
	Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Convocacao, error) {
	q := escopo.Aplicar(db, "codigoempresa")
	if filtro.EmpresaID != nil {
		q = q.Where("codigoempresa = ?", *filtro.EmpresaID)
	}
	if filtro.FuncionarioID != nil {
		q = q.Where("codigofuncionario = ?", *filtro.FuncionarioID)
	}
	if filtro.CodigoExame != nil {
		q = q.Where("codigoexame = ?", *filtro.CodigoExame)
	}
	if filtro.Refazer != nil {
		q = q.Where("refazer = ?", *filtro.Refazer)
	}
	if filtro.DataInicio != nil {
		q = q.Where("ultimopedido >= ?", *filtro.DataInicio)
	}
	if filtro.DataFim != nil {
		q = q.Where("ultimopedido <= ?", *filtro.DataFim)
	}
	var convocacoes []Convocacao
	err := filtro.Paginacao.Aplicar(q).Order("id").Find(&convocacoes).Error
	return convocacoes, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Convocacao, error) {
	var c Convocacao
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Convocacao) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error {
	if len(colunas) == 0 {
		return nil
	}
	return db.Model(&Convocacao{}).Where("id = ?", id).Updates(colunas).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Convocacao{}, "id = ?", id).Error
}
