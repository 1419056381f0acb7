package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTLPadrao é a validade do access token quando TOKEN_TTL não é informado
const TTLPadrao = 30 * time.Minute

// Emissor assina e valida tokens HS256 cujo sub é o id do usuário
type Emissor struct {
	segredo []byte
	ttl     time.Duration
	agora   func() time.Time
}

func NovoEmissor(segredo string, ttl time.Duration) *Emissor {
	if ttl <= 0 {
		ttl = TTLPadrao
	}
	return &Emissor{segredo: []byte(segredo), ttl: ttl, agora: time.Now}
}

// TTL devolve a validade configurada
func (e *Emissor) TTL() time.Duration {
	return e.ttl
}

// Gerar emite um token para o usuário e devolve também o instante de expiração
func (e *Emissor) Gerar(usuarioID uint) (string, time.Time, error) {
	agora := e.agora()
	exp := agora.Add(e.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(usuarioID), 10),
		IssuedAt:  jwt.NewNumericDate(agora),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(e.segredo)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao assinar token: %w", err)
	}
	return token, exp, nil
}

// Validar confere assinatura, algoritmo e expiração e devolve o id do sub
func (e *Emissor) Validar(tokenStr string) (uint, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(e.agora),
	)
	tok, err := parser.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return e.segredo, nil
	})
	if err != nil {
		return 0, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	if !tok.Valid {
		return 0, errors.New("token inválido")
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, errors.New("sub ausente")
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("sub inválido %q", sub)
	}
	return uint(id), nil
}
