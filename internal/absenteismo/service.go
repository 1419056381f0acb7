package absenteismo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/funcionario"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

type Service struct {
	DB           *gorm.DB
	Repository   Repository
	Funcionarios funcionario.Repository
}

func NewService(database *gorm.DB) *Service {
	return &Service{
		DB:           database,
		Repository:   NewRepository(),
		Funcionarios: funcionario.NewRepository(),
	}
}

func (s *Service) Listar(ctx context.Context, ident permissao.Identidade, filtro Filtro) ([]Absenteismo, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoAbsenteismos, permissao.Listar)
	if err != nil {
		return nil, err
	}
	var absenteismos []Absenteismo
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		absenteismos, err = s.Repository.Listar(tx, filtro, escopo)
		return err
	})
	return absenteismos, err
}

func (s *Service) Buscar(ctx context.Context, ident permissao.Identidade, id uint) (*Absenteismo, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoAbsenteismos, permissao.Ler)
	if err != nil {
		return nil, err
	}
	var a *Absenteismo
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err = s.carregar(tx, escopo, id)
		return err
	})
	return a, err
}

// Criar resolve o funcionário pela matrícula antes de conferir o escopo
func (s *Service) Criar(ctx context.Context, ident permissao.Identidade, req CriarAbsenteismoRequest) (*Absenteismo, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoAbsenteismos, permissao.Criar)
	if err != nil {
		return nil, err
	}
	a := Absenteismo{MatriculaFunc: req.MatriculaFunc, Atestado: req.Atestado}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := s.Funcionarios.BuscarPorMatricula(tx, req.MatriculaFunc)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.New(apierr.ErrFuncionarioNaoEncontrado, "", nil)
		}
		if err != nil {
			return err
		}
		if !escopo.Contem(f.CodigoEmpresa) {
			return apierr.Forbidden("sem permissão para registrar absenteísmo para este funcionário")
		}
		a.FuncionarioID = &f.Codigo
		return s.Repository.Criar(tx, &a)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) Atualizar(ctx context.Context, ident permissao.Identidade, id uint, req AtualizarAbsenteismoRequest, presentes utils.Presentes) (*Absenteismo, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoAbsenteismos, permissao.Atualizar)
	if err != nil {
		return nil, err
	}
	colunas, err := utils.Colunas(&req, presentes)
	if err != nil {
		return nil, err
	}
	var a *Absenteismo
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, id); err != nil {
			return err
		}
		if err := s.Repository.Atualizar(tx, id, colunas); err != nil {
			return err
		}
		a, err = s.Repository.BuscarPorID(tx, id)
		return err
	})
	return a, err
}

func (s *Service) Deletar(ctx context.Context, ident permissao.Identidade, id uint) error {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoAbsenteismos, permissao.Deletar)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, id); err != nil {
			return err
		}
		return s.Repository.Deletar(tx, id)
	})
}

// carregar: sem funcionário para a matrícula, o registro fica fora de qualquer escopo restrito
func (s *Service) carregar(tx *gorm.DB, escopo permissao.Escopo, id uint) (*Absenteismo, error) {
	a, err := s.Repository.BuscarPorID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("registro de absenteísmo não encontrado")
	}
	if err != nil {
		return nil, err
	}
	if escopo.Irrestrito() {
		return a, nil
	}
	f, err := s.Funcionarios.BuscarPorMatricula(tx, a.MatriculaFunc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.Forbidden("sem permissão para acessar este registro")
	}
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(f.CodigoEmpresa) {
		return nil, apierr.Forbidden("sem permissão para acessar este registro")
	}
	return a, nil
}
