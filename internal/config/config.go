package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"

	"github.com/grsnucleo/portal-grs/internal/utils/db"
)

// Config reúne a configuração da API, lida do ambiente (e de um .env opcional)
type Config struct {
	Porta       string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigens []string
	Banco       BancoConfig
	Log         LogConfig
	Metricas    MetricasConfig
}

type BancoConfig struct {
	Driver          string
	URL             string
	Host            string
	Porta           uint
	Nome            string
	Usuario         string
	Senha           string
	SSLDesabilitado bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogSQL          bool
}

type LogConfig struct {
	Nivel    string
	Producao bool
}

type MetricasConfig struct {
	Habilitado bool
	Caminho    string
}

const tamanhoMinimoSegredo = 32

// Load carrega o .env (se existir) e as variáveis de ambiente
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Porta:       v.GetString("PORT"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		TokenTTL:    v.GetDuration("TOKEN_TTL"),
		CORSOrigens: separar(v.GetString("CORS_ALLOWED_ORIGINS")),
		Banco: BancoConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Porta:           v.GetUint("DB_PORT"),
			Nome:            v.GetString("DB_NAME"),
			Usuario:         v.GetString("DB_USERNAME"),
			Senha:           v.GetString("DB_PASSWORD"),
			SSLDesabilitado: v.GetBool("DB_SSL_MODE_DISABLE"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			LogSQL:          v.GetBool("DB_LOG_SQL"),
		},
		Log: LogConfig{
			Nivel:    v.GetString("LOG_LEVEL"),
			Producao: v.GetBool("LOG_PRODUCTION"),
		},
		Metricas: MetricasConfig{
			Habilitado: v.GetBool("METRICS_ENABLED"),
			Caminho:    v.GetString("METRICS_PATH"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults define valores padrão; segredo e banco não têm padrão
func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("TOKEN_TTL", "30m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRODUCTION", true)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

func validateConfig(cfg *Config) error {
	var errs []error
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET não definida"))
	} else if len(cfg.JWTSecret) < tamanhoMinimoSegredo {
		errs = append(errs, fmt.Errorf("JWT_SECRET deve ter ao menos %d caracteres", tamanhoMinimoSegredo))
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL deve ser positivo"))
	}
	switch cfg.Banco.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER não suportado: %s", cfg.Banco.Driver))
	}
	if cfg.Banco.URL == "" && (cfg.Banco.Driver != "postgres" || cfg.Banco.Host == "" || cfg.Banco.Nome == "") {
		errs = append(errs, errors.New("defina DATABASE_URL ou DB_HOST e DB_NAME"))
	}
	return errors.Join(errs...)
}

// DSN devolve a string de conexão, montando a do PostgreSQL quando não há DATABASE_URL
func (b BancoConfig) DSN() string {
	if b.URL != "" {
		return b.URL
	}
	return db.MontarDSN(b.Host, b.Porta, b.Usuario, b.Senha, b.Nome, b.SSLDesabilitado)
}

// ConexaoDB converte para a configuração do pacote db
func (b BancoConfig) ConexaoDB() db.Config {
	nivel := logger.Error
	if b.LogSQL {
		nivel = logger.Info
	}
	return db.Config{
		Driver:          b.Driver,
		DSN:             b.DSN(),
		MaxIdleConns:    b.MaxIdleConns,
		MaxOpenConns:    b.MaxOpenConns,
		ConnMaxLifetime: b.ConnMaxLifetime,
		LogLevel:        nivel,
		SlowThreshold:   time.Second,
	}
}

func separar(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
