package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Novo cria o logger da aplicação
func Novo(nivel string, producao bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(nivel)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if !producao {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	return config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

func comRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID devolve o identificador da requisição, se houver
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// DoContexto anexa o request_id ao logger
func DoContexto(ctx context.Context, base *zap.Logger) *zap.Logger {
	if id := RequestID(ctx); id != "" {
		return base.With(zap.String("request_id", id))
	}
	return base
}
