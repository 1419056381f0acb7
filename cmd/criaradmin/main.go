package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/grsnucleo/portal-grs/internal/app"
	"github.com/grsnucleo/portal-grs/internal/config"
	"github.com/grsnucleo/portal-grs/internal/logger"
	"github.com/grsnucleo/portal-grs/internal/usuario"
	"github.com/grsnucleo/portal-grs/internal/utils"
	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

// criaradmin cadastra o primeiro administrador da API
func main() {
	var nome, email, senha string
	flag.StringVar(&nome, "nome", "Administrador", "Nome do administrador")
	flag.StringVar(&email, "email", "", "Email de login (obrigatório)")
	flag.StringVar(&senha, "senha", "", "Senha; vazia gera uma senha temporária")
	flag.Parse()

	if email == "" {
		fmt.Fprintln(os.Stderr, "informe -email")
		flag.Usage()
		os.Exit(2)
	}

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

	ctx := context.Background()
	database, err := db.ConnectDataBase(ctx, cfg.Banco.ConexaoDB(), log)
	if err != nil {
		log.Fatal("Erro ao conectar no banco", zap.Error(err))
	}
	if err := app.Migrar(database); err != nil {
		log.Fatal("Erro no AutoMigrate", zap.Error(err))
	}

	gerada := senha == ""
	if gerada {
		if senha, err = utils.GerarSenhaTemporaria(); err != nil {
			log.Fatal("Erro ao gerar senha", zap.Error(err))
		}
	}

	u, err := usuario.NewService(database).CriarAdministrador(ctx, nome, email, senha)
	if err != nil {
		log.Fatal("Erro ao criar administrador", zap.Error(err))
	}
	log.Info("Administrador criado", zap.Uint("id", u.ID), zap.String("email", u.Email))
	if gerada {
		fmt.Printf("Senha temporária: %s\n", senha)
	}
}
