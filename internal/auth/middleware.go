package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/permissao"
)

// MiddlewareAutenticacao exige Authorization: Bearer e grava a identidade no contexto
func MiddlewareAutenticacao(s *Service, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
				apierr.Responder(w, logger.DoContexto(r.Context(), log), apierr.Unauthorized("token ausente", nil))
				return
			}
			u, err := s.Resolver(r.Context(), strings.TrimSpace(h[7:]))
			if err != nil {
				apierr.Responder(w, logger.DoContexto(r.Context(), log), err)
				return
			}
			ctx := permissao.ComIdentidade(r.Context(), u.Identidade())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
