package log

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the ctx-aware logger used by usecases and repositories.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	zap *otelzap.Logger
}

var global *otelzap.Logger

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return l
}

func Init(l *zap.Logger) {
	global = otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel))
}

// Setup initialises the package logger and returns it for handlers and middleware.
func Setup() *otelzap.Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

func GetLogger() Logger {
	return &logger{zap: Setup()}
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Info(msg, toZap(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Warn(msg, toZap(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Error(msg, toZap(fields)...)
}

func toZap(fields []any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("field_%d", i), v))
		}
	}
	return out
}
