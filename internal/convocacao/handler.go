package convocacao

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

// GET /convocacoes
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
	convocacoes, err := h.Service.Listar(r.Context(), ident, filtro)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, convocacoes)
}

func filtroDe(r *http.Request) (Filtro, error) {
	var (
		f   Filtro
		err error
	)
	if f.EmpresaID, err = utils.QueryUint(r, "empresa_id"); err != nil {
		return f, err
	}
	if f.FuncionarioID, err = utils.QueryUint(r, "funcionario_id"); err != nil {
		return f, err
	}
	if f.Refazer, err = utils.QueryInt(r, "refazer"); err != nil {
		return f, err
	}
	if f.DataInicio, err = utils.QueryData(r, "data_inicio"); err != nil {
		return f, err
	}
	if f.DataFim, err = utils.QueryData(r, "data_fim"); err != nil {
		return f, err
	}
	if exame := r.URL.Query().Get("codigoexame"); exame != "" {
		f.CodigoExame = &exame
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
	var req CriarConvocacaoRequest
	if err := utils.Decodificar(r, &req); err != nil {
		h.erro(w, r, err)
		return
	}
	c, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusCreated, c)
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
	c, err := h.Service.Buscar(r.Context(), ident, id)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, c)
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
	var req AtualizarConvocacaoRequest
	presentes, err := utils.DecodificarAtualizacao(r, &req)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	c, err := h.Service.Atualizar(r.Context(), ident, id, req, presentes)
	if err != nil {
		h.erro(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, c)
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
