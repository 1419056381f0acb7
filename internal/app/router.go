package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grsnucleo/portal-grs/internal/absenteismo"
	"github.com/grsnucleo/portal-grs/internal/auth"
	"github.com/grsnucleo/portal-grs/internal/config"
	"github.com/grsnucleo/portal-grs/internal/convocacao"
	"github.com/grsnucleo/portal-grs/internal/empresa"
	"github.com/grsnucleo/portal-grs/internal/funcionario"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/metrics"
	"github.com/grsnucleo/portal-grs/internal/usuario"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

// crud agrupa os handlers de um recurso
type crud interface {
	Listar(http.ResponseWriter, *http.Request)
	Criar(http.ResponseWriter, *http.Request)
	BuscarPorID(http.ResponseWriter, *http.Request)
	Atualizar(http.ResponseWriter, *http.Request)
	Deletar(http.ResponseWriter, *http.Request)
}

// NovoRouter monta as rotas, middlewares e CORS da API
func NovoRouter(cfg *config.Config, database *gorm.DB, log *zap.Logger) http.Handler {
	r := mux.NewRouter()

	var m *metrics.Metricas
	if cfg.Metricas.Habilitado {
		m = metrics.Nova()
		r.Handle(cfg.Metricas.Caminho, m.Handler()).Methods(http.MethodGet)
		r.Use(m.Middleware)
	}

	authService := auth.NewService(database, auth.NovoEmissor(cfg.JWTSecret, cfg.TokenTTL))
	authHandler := auth.NewHandler(authService, m, log)

	r.HandleFunc("/", raiz).Methods(http.MethodGet)
	r.HandleFunc("/health", saude(database, log)).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protegido := r.NewRoute().Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao(authService, log))

	registrar(protegido, "/empresas", empresa.NewHandler(database, log))
	registrar(protegido, "/funcionarios", funcionario.NewHandler(database, log))
	registrar(protegido, "/convocacoes", convocacao.NewHandler(database, log))
	registrar(protegido, "/absenteismos", absenteismo.NewHandler(database, log))
	registrar(protegido, "/usuarios", usuario.NewHandler(database, log))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigens,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{logger.HeaderRequestID},
		AllowCredentials: true,
	})

	return c.Handler(logger.Encadear(log, r))
}

// registrar cria as rotas com e sem barra final
func registrar(r *mux.Router, base string, h crud) {
	for _, p := range []string{base, base + "/"} {
		r.HandleFunc(p, h.Listar).Methods(http.MethodGet)
		r.HandleFunc(p, h.Criar).Methods(http.MethodPost)
	}
	r.HandleFunc(base+"/{id:[0-9]+}", h.BuscarPorID).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id:[0-9]+}", h.Atualizar).Methods(http.MethodPut)
	r.HandleFunc(base+"/{id:[0-9]+}", h.Deletar).Methods(http.MethodDelete)
}

func raiz(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Bem-vindo à API do Portal GRS"})
}

func saude(database *gorm.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx, database); err != nil {
			logger.DoContexto(r.Context(), log).Error("banco indisponível", zap.Error(err))
			utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "indisponivel"})
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
