package logger

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grsnucleo/portal-grs/internal/utils"
)

const HeaderRequestID = "X-Request-ID"

// Requisicoes gera o X-Request-ID e registra cada requisição concluída
func Requisicoes(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)

			start := time.Now()
			sw := utils.NewStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(comRequestID(r.Context(), id)))

			campos := []zap.Field{
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.Status),
				zap.Int("bytes", sw.Bytes),
				zap.Duration("latency", time.Since(start)),
			}
			switch {
			case sw.Status >= 500:
				log.Error("requisição", campos...)
			case sw.Status >= 400:
				log.Warn("requisição", campos...)
			default:
				log.Info("requisição", campos...)
			}
		})
	}
}

// Recuperacao transforma pânicos em 500
func Recuperacao(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					DoContexto(r.Context(), log).Error("recuperado de pânico",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.ByteString("stack", debug.Stack()),
					)
					utils.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "erro interno do servidor"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Encadear aplica Recuperacao por dentro de Requisicoes
func Encadear(log *zap.Logger, h http.Handler) http.Handler {
	return Requisicoes(log)(Recuperacao(log)(h))
}
