package funcionario

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

type Service struct {
	DB         *gorm.DB
	Repository Repository
	Empresas   empresa.Repository
}

func NewService(database *gorm.DB) *Service {
	return &Service{
		DB:         database,
		Repository: NewRepository(),
		Empresas:   empresa.NewRepository(),
	}
}

func (s *Service) Listar(ctx context.Context, ident permissao.Identidade, filtro Filtro) ([]Funcionario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoFuncionarios, permissao.Listar)
	if err != nil {
		return nil, err
	}
	if filtro.EmpresaID != nil && !escopo.Contem(*filtro.EmpresaID) {
		return nil, apierr.Forbidden("sem permissão para ver funcionários desta empresa")
	}
	var funcionarios []Funcionario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		funcionarios, err = s.Repository.Listar(tx, filtro, escopo)
		return err
	})
	return funcionarios, err
}

func (s *Service) Buscar(ctx context.Context, ident permissao.Identidade, codigo uint) (*Funcionario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoFuncionarios, permissao.Ler)
	if err != nil {
		return nil, err
	}
	var f *Funcionario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err = s.carregar(tx, escopo, codigo)
		return err
	})
	return f, err
}

// Criar exige empresa no escopo e existente
func (s *Service) Criar(ctx context.Context, ident permissao.Identidade, req CriarFuncionarioRequest) (*Funcionario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoFuncionarios, permissao.Criar)
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(req.CodigoEmpresa) {
		return nil, apierr.Forbidden("sem permissão para criar funcionários nesta empresa")
	}
	f := req.Modelo()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existe, err := s.Empresas.Existe(tx, f.CodigoEmpresa)
		if err != nil {
			return err
		}
		if !existe {
			return apierr.New(apierr.ErrEmpresaNaoEncontrada, "", nil)
		}
		if f.Matricula != nil {
			if err := s.verificarMatricula(tx, *f.Matricula, 0); err != nil {
				return err
			}
		}
		return traduzir(s.Repository.Criar(tx, &f))
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) Atualizar(ctx context.Context, ident permissao.Identidade, codigo uint, req AtualizarFuncionarioRequest, presentes utils.Presentes) (*Funcionario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoFuncionarios, permissao.Atualizar)
	if err != nil {
		return nil, err
	}
	colunas, err := utils.Colunas(&req, presentes)
	if err != nil {
		return nil, err
	}
	var f *Funcionario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, codigo); err != nil {
			return err
		}
		if req.Matricula != nil {
			if err := s.verificarMatricula(tx, *req.Matricula, codigo); err != nil {
				return err
			}
		}
		if err := s.Repository.Atualizar(tx, codigo, colunas); err != nil {
			return traduzir(err)
		}
		f, err = s.Repository.BuscarPorID(tx, codigo)
		return err
	})
	return f, err
}

func (s *Service) Deletar(ctx context.Context, ident permissao.Identidade, codigo uint) error {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoFuncionarios, permissao.Deletar)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, codigo); err != nil {
			return err
		}
		return s.Repository.Deletar(tx, codigo)
	})
}

// carregar aplica existência antes do escopo
func (s *Service) carregar(tx *gorm.DB, escopo permissao.Escopo, codigo uint) (*Funcionario, error) {
	f, err := s.Repository.BuscarPorID(tx, codigo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("funcionário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(f.CodigoEmpresa) {
		return nil, apierr.Forbidden("sem permissão para acessar este funcionário")
	}
	return f, nil
}

func (s *Service) verificarMatricula(tx *gorm.DB, matricula string, exceto uint) error {
	emUso, err := s.Repository.MatriculaEmUso(tx, matricula, exceto)
	if err != nil {
		return err
	}
	if emUso {
		return apierr.Duplicado("matrícula já cadastrada", nil)
	}
	return nil
}

func traduzir(err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Duplicado("funcionário já cadastrado", err)
	}
	return err
}
