package funcionario

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

// GET /funcionarios?empresa_id=&skip=&limit=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var filtro Filtro
	if filtro.EmpresaID, err = utils.QueryUint(r, "empresa_id"); err != nil {
		h.erro(w, r, err)
		return
	}
	if filtro.Paginacao, err = utils.PaginacaoDe(r); err != nil {
		h.erro(w, r, err)
		return
	}
	funcionarios, err := h.Service.Listar(r.Context(), ident, filtro)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, funcionarios)
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ident, err := permissao.Exigir(r.Context())
	if err != nil {
		h.erro(w, r, err)
		return
	}
	var req CriarFuncionarioRequest
	if err := utils.Decodificar(r, &req); err != nil {
		h.erro(w, r, err)
		return
	}
	f, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, f)
}

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
	f, err := h.Service.Buscar(r.Context(), ident, codigo)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, f)
}

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
	var req AtualizarFuncionarioRequest
	presentes, err := utils.DecodificarAtualizacao(r, &req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	f, err := h.Service.Atualizar(r.Context(), ident, codigo, req, presentes)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, f)
}

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
