package usuario

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

// campos que os papéis restritos podem alterar no próprio cadastro
var camposProprios = map[string]bool{"nome": true, "email": true, "senha": true}

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

// Listar: administrador vê todos, clienteadm vê usuários cuja empresa principal
// está no seu escopo e os demais papéis veem só a si mesmos
func (s *Service) Listar(ctx context.Context, ident permissao.Identidade, pag utils.Paginacao) ([]Usuario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoUsuarios, permissao.Listar)
	if err != nil {
		return nil, err
	}
	var usuarios []Usuario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if id, proprio := escopo.SomenteProprio(); proprio {
			u, err := s.carregar(tx, id)
			if err != nil {
				return err
			}
			usuarios = []Usuario{*u}
			return nil
		}
		usuarios, err = s.Repository.Listar(tx, escopo, pag)
		return err
	})
	return usuarios, err
}

func (s *Service) Buscar(ctx context.Context, ident permissao.Identidade, id uint) (*Usuario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoUsuarios, permissao.Ler)
	if err != nil {
		return nil, err
	}
	var u *Usuario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err = s.carregar(tx, id)
		if err != nil {
			return err
		}
		if !visivel(ident, escopo, u) {
			return apierr.Forbidden("sem permissão para acessar este usuário")
		}
		return nil
	})
	return u, err
}

func (s *Service) Criar(ctx context.Context, ident permissao.Identidade, req CriarUsuarioRequest) (*Usuario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoUsuarios, permissao.Criar)
	if err != nil {
		return nil, err
	}
	if !escopo.Irrestrito() {
		if req.Tipo == permissao.Administrador {
			return nil, apierr.Forbidden("sem permissão para criar administradores")
		}
		if req.EmpresaPrincipalID == nil || !escopo.Contem(*req.EmpresaPrincipalID) {
			return nil, apierr.Forbidden("empresa principal fora das suas empresas")
		}
		if err := dentroDoEscopo(escopo, req.EmpresasIDs); err != nil {
			return nil, err
		}
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		return nil, fmt.Errorf("erro ao processar senha: %w", err)
	}

	var u *Usuario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verificarEmail(tx, req.Email, 0); err != nil {
			return err
		}
		if err := s.verificarEmpresas(tx, req.EmpresaPrincipalID, req.EmpresasIDs); err != nil {
			return err
		}
		novo := Usuario{
			Nome:               req.Nome,
			Email:              req.Email,
			SenhaHash:          hash,
			Tipo:               req.Tipo,
			EmpresaPrincipalID: req.EmpresaPrincipalID,
		}
		if err := s.Repository.Criar(tx, &novo, req.EmpresasIDs); err != nil {
			return traduzir(err)
		}
		u, err = s.Repository.BuscarPorID(tx, novo.ID)
		return err
	})
	return u, err
}

func (s *Service) Atualizar(ctx context.Context, ident permissao.Identidade, id uint, req AtualizarUsuarioRequest, presentes utils.Presentes) (*Usuario, error) {
	escopo, err := permissao.Autorizar(ident, permissao.RecursoUsuarios, permissao.Atualizar)
	if err != nil {
		return nil, err
	}
	colunas, err := utils.Colunas(&req, presentes)
	if err != nil {
		return nil, err
	}

	var u *Usuario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		atual, err := s.carregar(tx, id)
		if err != nil {
			return err
		}
		if !visivel(ident, escopo, atual) {
			return apierr.Forbidden("sem permissão para alterar este usuário")
		}
		if !escopo.Irrestrito() && atual.Tipo == permissao.Administrador {
			return apierr.Forbidden("sem permissão para alterar um administrador")
		}
		if err := restringirCampos(escopo, req, presentes); err != nil {
			return err
		}

		if req.Email != nil {
			if err := s.verificarEmail(tx, *req.Email, id); err != nil {
				return err
			}
		}
		var empresas []uint
		if presentes.Tem("empresas_ids") {
			empresas = req.EmpresasIDs
		}
		if err := s.verificarEmpresas(tx, req.EmpresaPrincipalID, empresas); err != nil {
			return err
		}
		if req.Senha != nil {
			hash, err := utils.HashSenha(*req.Senha)
			if err != nil {
				return fmt.Errorf("erro ao processar senha: %w", err)
			}
			colunas["senha_hash"] = hash
		}

		if err := s.Repository.Atualizar(tx, id, colunas); err != nil {
			return traduzir(err)
		}
		if presentes.Tem("empresas_ids") {
			if err := s.Repository.SubstituirEmpresas(tx, id, req.EmpresasIDs); err != nil {
				return err
			}
		}
		u, err = s.Repository.BuscarPorID(tx, id)
		return err
	})
	return u, err
}

// Deletar: só administrador, e nunca a própria conta
func (s *Service) Deletar(ctx context.Context, ident permissao.Identidade, id uint) error {
	if _, err := permissao.Autorizar(ident, permissao.RecursoUsuarios, permissao.Deletar); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.carregar(tx, id); err != nil {
			return err
		}
		if id == ident.UsuarioID {
			return apierr.New(apierr.ErrAutoExclusao, "", nil)
		}
		return s.Repository.Deletar(tx, id)
	})
}

// CriarAdministrador cadastra um administrador sem identidade de chamador; usado na carga inicial
func (s *Service) CriarAdministrador(ctx context.Context, nome, email, senha string) (*Usuario, error) {
	hash, err := utils.HashSenha(senha)
	if err != nil {
		return nil, fmt.Errorf("erro ao processar senha: %w", err)
	}
	u := &Usuario{Nome: nome, Email: email, SenhaHash: hash, Tipo: permissao.Administrador}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verificarEmail(tx, email, 0); err != nil {
			return err
		}
		return traduzir(s.Repository.Criar(tx, u, nil))
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) carregar(tx *gorm.DB, id uint) (*Usuario, error) {
	u, err := s.Repository.BuscarPorID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("usuário não encontrado")
	}
	return u, err
}

func (s *Service) verificarEmail(tx *gorm.DB, email string, exceto uint) error {
	emUso, err := s.Repository.EmailEmUso(tx, email, exceto)
	if err != nil {
		return err
	}
	if emUso {
		return apierr.Duplicado("email já cadastrado", nil)
	}
	return nil
}

func (s *Service) verificarEmpresas(tx *gorm.DB, principal *uint, empresas []uint) error {
	pedidas := append([]uint{}, empresas...)
	if principal != nil {
		pedidas = append(pedidas, *principal)
	}
	if len(pedidas) == 0 {
		return nil
	}
	existentes, err := s.Empresas.Existentes(tx, pedidas)
	if err != nil {
		return err
	}
	ok := make(map[uint]bool, len(existentes))
	for _, c := range existentes {
		ok[c] = true
	}
	for _, c := range pedidas {
		if !ok[c] {
			return apierr.BadRequest("uma ou mais empresas não existem", nil)
		}
	}
	return nil
}

func visivel(ident permissao.Identidade, escopo permissao.Escopo, u *Usuario) bool {
	if u.ID == ident.UsuarioID {
		return true
	}
	if _, proprio := escopo.SomenteProprio(); proprio {
		return false
	}
	return escopo.ContemPtr(u.EmpresaPrincipalID)
}

func restringirCampos(escopo permissao.Escopo, req AtualizarUsuarioRequest, presentes utils.Presentes) error {
	if escopo.Irrestrito() {
		return nil
	}
	if _, proprio := escopo.SomenteProprio(); proprio {
		for campo := range presentes {
			if !camposProprios[campo] {
				return apierr.Forbidden(fmt.Sprintf("sem permissão para alterar o campo '%s'", campo))
			}
		}
		return nil
	}
	if req.Tipo != nil && *req.Tipo == permissao.Administrador {
		return apierr.Forbidden("sem permissão para conceder perfil de administrador")
	}
	if presentes.Tem("empresa_principal_id") && !escopo.ContemPtr(req.EmpresaPrincipalID) {
		return apierr.Forbidden("empresa principal fora das suas empresas")
	}
	if presentes.Tem("empresas_ids") {
		return dentroDoEscopo(escopo, req.EmpresasIDs)
	}
	return nil
}

func dentroDoEscopo(escopo permissao.Escopo, empresas []uint) error {
	for _, c := range empresas {
		if !escopo.Contem(c) {
			return apierr.Forbidden(fmt.Sprintf("sem permissão para vincular a empresa %d", c))
		}
	}
	return nil
}

func traduzir(err error) error {
	if db.IsUniqueViolation(err) {
		return apierr.Duplicado("email já cadastrado", err)
	}
	return err
}
