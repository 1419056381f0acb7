package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/grsnucleo/portal-grs/internal/app"
	"github.com/grsnucleo/portal-grs/internal/config"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro na configuração: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Novo(cfg.Log.Nivel, cfg.Log.Producao)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.ConnectDataBase(ctx, cfg.Banco.ConexaoDB(), log)
	if err != nil {
		log.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := app.Migrar(database); err != nil {
		log.Fatal("Erro no AutoMigrate", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Porta,
		Handler:           app.NovoRouter(cfg, database, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("Servidor rodando", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Erro no servidor HTTP", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Erro ao encerrar servidor", zap.Error(err))
	}
	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
}
