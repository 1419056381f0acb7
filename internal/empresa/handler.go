package empresa

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

// Handler expõe o recurso /empresas
type Handler struct {
	Service *Service
	Log     *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{Service: NewService(db), Log: log}
}

func (h *Handler) erro(w http.ResponseWriter, r *http.Request, err error) {
	apierr.Responder(w, logger.DoContexto(r.Context(), h.Log), err)
}

// GET /empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	pag, err := utils.PaginacaoDe(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	empresas, err := h.Service.Listar(r.Context(), ident, pag)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, empresas)
}

// POST /empresas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req CriarEmpresaRequest
	if err := utils.Decodificar(r, &req); err != nil {
		h.erro(w, r, err)
		return
	}
	e, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, e)
}

// GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	codigo, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	e, err := h.Service.Buscar(r.Context(), ident, codigo)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, e)
}

// PUT /empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	codigo, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req AtualizarEmpresaRequest
	presentes, err := utils.DecodificarAtualizacao(r, &req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	e, err := h.Service.Atualizar(r.Context(), ident, codigo, req, presentes)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, e)
}

// DELETE /empresas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	codigo, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	if err := h.Service.Deletar(r.Context(), ident, codigo); err != nil {
		h.erro(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
