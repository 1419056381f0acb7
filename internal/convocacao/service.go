package convocacao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/funcionario"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

type Service struct {
	DB           *gorm.DB
	Repository   Repository
	Empresas     empresa.Repository
	Funcionarios funcionario.Repository
}

func NewService(database *gorm.DB) *Service {
	return &Service{
		DB:           database,
		Repository:   NewRepository(),
		Empresas:     empresa.NewRepository(),
		Funcionarios: funcionario.NewRepository(),
	}
}

func (s *Service) Listar(ctx context.Context, ident permissao.Identidade, filtro Filtro) ([]Convocacao, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoConvocacoes, permissao.Listar)
	if err != nil {
		return nil, err
	}
	var convocacoes []Convocacao
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		convocacoes, err = s.Repository.Listar(tx, filtro, escopo)
		return err
	})
	return convocacoes, err
}

func (s *Service) Buscar(ctx context.Context, ident permissao.Identidade, id uint) (*Convocacao, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoConvocacoes, permissao.Ler)
	if err != nil {
		return nil, err
	}
	var c *Convocacao
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err = s.carregar(tx, escopo, id)
		return err
	})
	return c, err
}

// Criar confere escopo, empresa e funcionário nessa ordem
func (s *Service) Criar(ctx context.Context, ident permissao.Identidade, req CriarConvocacaoRequest) (*Convocacao, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoConvocacoes, permissao.Criar)
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(req.CodigoEmpresa) {
		return nil, apierr.Forbidden("sem permissão para criar convocações para esta empresa")
	}
	c := req.Modelo()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existe, err := s.Empresas.Existe(tx, c.CodigoEmpresa)
		if err != nil {
			return err
		}
		if !existe {
			return apierr.New(apierr.ErrEmpresaNaoEncontrada, "", nil)
		}
		f, err := s.Funcionarios.BuscarPorID(tx, c.CodigoFuncionario)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.New(apierr.ErrFuncionarioNaoEncontrado, "", nil)
		}
		if err != nil {
			return err
		}
		if f.CodigoEmpresa != c.CodigoEmpresa {
			return apierr.BadRequest("funcionário não pertence à empresa informada", nil)
		}
		return s.Repository.Criar(tx, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Atualizar(ctx context.Context, ident permissao.Identidade, id uint, req AtualizarConvocacaoRequest, presentes utils.Presentes) (*Convocacao, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoConvocacoes, permissao.Atualizar)
	if err != nil {
		return nil, err
	}
	colunas, err := utils.Colunas(&req, presentes)
	if err != nil {
		return nil, err
	}
	var c *Convocacao
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, escopo, id); err != nil {
			return err
		}
		if err := s.Repository.Atualizar(tx, id, colunas); err != nil {
			return err
		}
		c, err = s.Repository.BuscarPorID(tx, id)
		return err
	})
	return c, err
}

func (s *Service) Deletar(ctx context.Context, ident permissao.Identidade, id uint) error {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoConvocacoes, permissao.Deletar)
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

func (s *Service) carregar(tx *gorm.DB, escopo permissao.Escopo, id uint) (*Convocacao, error) {
	c, err := s.Repository.BuscarPorID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("convocação não encontrada")
	}
	if err != nil {
		return nil, err
	}
	if !escopo.Contem(c.CodigoEmpresa) {
		return nil, apierr.Forbidden("sem permissão para acessar esta convocação")
	}
	return c, nil
}
