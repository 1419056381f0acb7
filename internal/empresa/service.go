package empresa

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

type Service struct {
	DB         *gorm.DB
	Repository Repository
}

func NewService(database *gorm.DB) *Service {
	return &Service{DB: database, Repository: NewRepository()}
}

// Listar devolve as empresas do escopo do usuário
func (s *Service) Listar(ctx context.Context, ident permissao.Identidade, pag utils.Paginacao) ([]Empresa, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoEmpresas, permissao.Listar)
	if err != nil {
		return nil, err
	}
	var empresas []Empresa
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empresas, err = s.Repository.Listar(tx, escopo, pag)
		return err
	})
	return empresas, err
}

func (s *Service) Buscar(ctx context.Context, ident permissao.Identidade, codigo uint) (*Empresa, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoEmpresas, permissao.Ler)
	if err != nil {
		return nil, err
	}
	var e *Empresa
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err = s.carregar(tx, escopo, codigo)
		return err
	})
	return e, err
}

func (s *Service) Criar(ctx context.Context, ident permissao.Identidade, req CriarEmpresaRequest) (*Empresa, error) {
	if _, err := permissao.Autorizar(ident, permissao.RecursoEmpresas, permissao.Criar); err != nil {
		return nil, err
	}
	e := req.Modelo()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verificarCNPJ(tx, e.CNPJ, 0); err != nil {
			return err
		}
		if err := s.Repository.Criar(tx, &e); err != nil {
			return traduzir(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Atualizar(ctx context.Context, ident permissao.Identidade, codigo uint, req AtualizarEmpresaRequest, presentes utils.Presentes) (*Empresa, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoEmpresas, permissao.Atualizar)
	if err != nil {
		return nil, err
	}
	colunas, err := utils.Colunas(&req, presentes)
	if err != nil {
		return nil, err
	}
	var e *Empresa
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, codigo); err != nil {
			return err
		}
		if req.CNPJ != nil {
			if err := s.verificarCNPJ(tx, *req.CNPJ, codigo); err != nil {
				return err
			}
		}
		if err := s.Repository.Atualizar(tx, codigo, colunas); err != nil {
			return traduzir(err)
		}
		e, err = s.Repository.BuscarPorID(tx, codigo)
		return err
	})
	return e, err
}

// Deletar remove a empresa; vínculos de usuários, funcionários ou convocações impedem a exclusão
func (s *Service) Deletar(ctx context.Context, ident permissao.Identidade, codigo uint) error {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoEmpresas, permissao.Deletar)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, codigo); err != nil {
			return err
		}
		dep, err := s.Repository.Dependentes(tx, codigo)
		if err != nil {
			return err
		}
		switch {
		case dep.Usuarios > 0:
			return apierr.New(apierr.ErrEmpresaComDependentes, "não é possível excluir empresa com usuários vinculados", nil)
		case dep.Funcionarios > 0:
			return apierr.New(apierr.ErrEmpresaComDependentes, "não é possível excluir empresa com funcionários cadastrados", nil)
		case dep.Convocacoes > 0:
			return apierr.New(apierr.ErrEmpresaComDependentes, "não é possível excluir empresa com convocações cadastradas", nil)
		}
		return s.Repository.Deletar(tx, codigo)
	})
}

// carregar aplica existência antes do escopo
func (s *Service) carregar(tx *gorm.DB, escopo permissao.Escopo, codigo uint) (*Empresa, error) {
	e, err := s.Repository.BuscarPorID(tx, codigo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("empresa não encontrada")
	}
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(e.Codigo) {
		return nil, apierr.Forbidden("sem permissão para acessar esta empresa")
	}
	return e, nil
}

func (s *Service) verificarCNPJ(tx *gorm.DB, cnpj string, exceto uint) error {
	emUso, err := s.Repository.CNPJEmUso(tx, cnpj, exceto)
	if err != nil {
		return err
	}
	if emUso {
		return apierr.Duplicado("CNPJ já cadastrado", nil)
	}
	return nil
}

func traduzir(err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Duplicado("registro duplicado", err)
	}
	return err
}
