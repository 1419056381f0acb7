package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/metrics"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

type Handler struct {
	Service  *Service
	Metricas *metrics.Metricas
	Log      *zap.Logger
}

func NewHandler(s *Service, m *metrics.Metricas, log *zap.Logger) *Handler {
	return &Handler{Service: s, Metricas: m, Log: log}
}

// Login recebe username e password em application/x-www-form-urlencoded
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.DoContexto(r.Context(), h.Log)
	if err := r.ParseForm(); err != nil {
		apierr.Responder(w, log, apierr.BadRequest("formulário inválido", err))
		return
	}
	email := r.PostForm.Get("username")
	senha := r.PostForm.Get("password")
	if email == "" || senha == "" {
		apierr.Responder(w, log, apierr.BadRequest("username e password são obrigatórios", nil))
		return
	}

	token, err := h.Service.Autenticar(r.Context(), email, senha)
	if err != nil {
		h.Metricas.LoginRegistrado("falha")
		log.Info("login recusado", zap.String("email", email))
		apierr.Responder(w, log, err)
		return
	}
	h.Metricas.LoginRegistrado("sucesso")
	utils.JSON(w, http.StatusOK, token)
}
