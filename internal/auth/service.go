package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/usuario"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

// Token é a resposta de POST /auth/login
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Service struct {
	DB       *gorm.DB
	Usuarios usuario.Repository
	Emissor  *Emissor
}

func NewService(database *gorm.DB, emissor *Emissor) *Service {
	return &Service{DB: database, Usuarios: usuario.NewRepository(), Emissor: emissor}
}

// Autenticar confere email e senha; só o sucesso grava ultimo_acesso
func (s *Service) Autenticar(ctx context.Context, email, senha string) (*Token, error) {
	var token *Token
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := s.Usuarios.BuscarPorEmail(tx, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.New(apierr.ErrCredenciaisInvalidas, "", nil)
		}
		if err != nil {
			return err
		}
		if !utils.VerificarSenha(u.SenhaHash, senha) {
			return apierr.New(apierr.ErrCredenciaisInvalidas, "", nil)
		}

		acesso, _, err := s.Emissor.Gerar(u.ID)
		if err != nil {
			return err
		}
		if err := s.Usuarios.RegistrarAcesso(tx, u.ID, s.Emissor.agora()); err != nil {
			return err
		}
		token = &Token{
			AccessToken: acesso,
			TokenType:   "bearer",
			ExpiresIn:   int(s.Emissor.TTL().Seconds()),
		}
		return nil
	})
	return token, err
}

// Resolver valida o token e carrega o usuário com suas empresas
func (s *Service) Resolver(ctx context.Context, tokenStr string) (*usuario.Usuario, error) {
	id, err := s.Emissor.Validar(tokenStr)
	if err != nil {
		return nil, apierr.Unauthorized("", err)
	}
	var u *usuario.Usuario
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err = s.Usuarios.BuscarPorID(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.Unauthorized("", err)
		}
		return err
	})
	return u, err
}
