package usuario

import (
	"time"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

type Repository interface {
	Listar(db *gorm.DB, escopo permissao.Escopo, pag utils.Paginacao) ([]Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	EmailEmUso(db *gorm.DB, email string, exceto uint) (bool, error)
	Criar(db *gorm.DB, u *Usuario, empresas []uint) error
	Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error
	SubstituirEmpresas(db *gorm.DB, id uint, empresas []uint) error
	RegistrarAcesso(db *gorm.DB, id uint, quando time.Time) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar filtra pela empresa principal; o escopo "somente próprio" é resolvido no serviço
func (r *repositoryImpl) Listar(db *gorm.DB, escopo permissao.Escopo, pag utils.Paginacao) ([]Usuario, error) {
	var usuarios []Usuario
	err := pag.Aplicar(escopo.Aplicar(db, "empresa_principal_id")).
		Preload("Empresas").
		Order("id").
		Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.Preload("Empresas").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Preload("Empresas").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) EmailEmUso(db *gorm.DB, email string, exceto uint) (bool, error) {
	var n int64
	err := db.Model(&Usuario{}).Where("email = ? AND id <> ?", email, exceto).Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario, empresas []uint) error {
	if err := db.Omit("Empresas").Create(u).Error; err != nil {
		return err
	}
	return r.SubstituirEmpresas(db, u.ID, empresas)
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, colunas map[string]interface{}) error {
	if len(colunas) == 0 {
		return nil
	}
	return db.Model(&Usuario{}).Where("id = ?", id).Updates(colunas).Error
}

func (r *repositoryImpl) SubstituirEmpresas(db *gorm.DB, id uint, empresas []uint) error {
	if err := db.Where("usuario_id = ?", id).Delete(&Vinculo{}).Error; err != nil {
		return err
	}
	if len(empresas) == 0 {
		return nil
	}
	vinculos := make([]Vinculo, 0, len(empresas))
	vistos := make(map[uint]bool, len(empresas))
	for _, codigo := range empresas {
		if vistos[codigo] {
			continue
		}
		vistos[codigo] = true
		vinculos = append(vinculos, Vinculo{UsuarioID: id, EmpresaID: codigo})
	}
	return db.Create(&vinculos).Error
}

func (r *repositoryImpl) RegistrarAcesso(db *gorm.DB, id uint, quando time.Time) error {
	return db.Model(&Usuario{}).Where("id = ?", id).Update("ultimo_acesso", quando).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	if err := db.Where("usuario_id = ?", id).Delete(&Vinculo{}).Error; err != nil {
		return err
	}
	return db.Delete(&Usuario{}, id).Error
}
