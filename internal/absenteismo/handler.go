package absenteismo

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

// GET /absenteismos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	filtro, err := filtroDe(r)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	absenteismos, err := h.Service.Listar(r.Context(), ident, filtro)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, absenteismos)
}

func filtroDe(r *http.Request) (Filtro, error) {
	var (
		f   Filtro
		err error
	)
	if f.DtInicio, err = utils.QueryData(r, "dt_inicio"); err != nil {
		return f, err
	}
	if f.DtFim, err = utils.QueryData(r, "dt_fim"); err != nil {
		return f, err
	}
	if f.TipoAtestado, err = utils.QueryInt(r, "tipo_atestado"); err != nil {
		return f, err
	}
	if m := r.URL.Query().Get("matricula"); m != "" {
		f.Matricula = &m
	}
	if cid := r.URL.Query().Get("cid"); cid != "" {
		f.CID = &cid
	}
	f.Paginacao, err = utils.PaginacaoDe(r)
	return f, err
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req CriarAbsenteismoRequest
	if err := utils.Decodificar(r, &req); err != nil {
		h.erro(w, r, err)
		return
	}
	a, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, a)
}

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
	a, err := h.Service.Buscar(r.Context(), ident, id)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, a)
}

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
	var req AtualizarAbsenteismoRequest
	presentes, err := utils.DecodificarAtualizacao(r, &req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	a, err := h.Service.Atualizar(r.Context(), ident, id, req, presentes)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, a)
}

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
