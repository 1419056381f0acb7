package absenteismo

import (
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/permissao"
)

type Repository interface {
	Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Absenteismo, error)
	BuscarPorID(db *gorm.DB, id uint) (*Absenteismo, error)
	Criar(db *gorm.DB, a *Absenteismo) error
	Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar restringe pela empresa do funcionário dono da matrícula
func (r *repositoryImpl) Listar(db *gorm.DB, filtro Filtro, escopo permissao.Escopo) ([]Absenteismo, error) {
	q := db.Model(&Absenteismo{}).Select("absenteismos.*")
	if !escopo.Irrestrito() {
		q = q.Joins("JOIN funcionarios ON funcionarios.matriculafuncionario = absenteismos.matricula_func")
		q = escopo.Aplicar(q, "funcionarios.codigoempresa")
	}
	if filtro.Matricula != nil {
		q = q.Where("absenteismos.matricula_func = ?", *filtro.Matricula)
	}
	if filtro.DtInicio != nil {
		q = q.Where("absenteismos.dt_inicio_atestado >= ?", *filtro.DtInicio)
	}
	if filtro.DtFim != nil {
		q = q.Where("absenteismos.dt_fim_atestado <= ?", *filtro.DtFim)
	}
	if filtro.TipoAtestado != nil {
		q = q.Where("absenteismos.tipo_atestado = ?", *filtro.TipoAtestado)
	}
	if filtro.CID != nil {
		q = q.Where("absenteismos.cid_principal LIKE ?", "%"+*filtro.CID+"%")
	}
	var absenteismos []Absenteismo
	err := filtro.Paginacao.Aplicar(q).Order("absenteismos.id").Find(&absenteismos).Error
	return absenteismos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Absenteismo, error) {
	var a Absenteismo
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Absenteismo) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error {
	if len(colunas) == 0 {
		return nil
	}
	return db.Model(&Absenteismo{}).Where("id = ?", id).Updates(colunas).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Absenteismo{}, "id = ?", id).Error
}
