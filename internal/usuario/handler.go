package usuario

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/apierr"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/permissao"
	"github.com/grsnucleo/portal-grs/internal/utils"
)

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

// GET /usuarios
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
	usuarios, err := h.Service.Listar(r.Context(), ident, pag)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, NovasRespostas(usuarios))
}

// POST /usuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req CriarUsuarioRequest
	if err := utils.Decodificar(r, &req); err != nil {
		h.erro(w, r, err)
		return
	}
	u, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, NovaResposta(u))
}

// GET /usuarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	id, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	u, err := h.Service.Buscar(r.Context(), ident, id)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, NovaResposta(u))
}

// PUT /usuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	id, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req AtualizarUsuarioRequest
	presentes, err := utils.DecodificarAtualizacao(r, &req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	u, err := h.Service.Atualizar(r.Context(), ident, id, req, presentes)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, NovaResposta(u))
}

// DELETE /usuarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	id, err := utils.IDDaRota(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	if err := h.Service.Deletar(r.Context(), ident, id); err != nil {
		h.erro(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
