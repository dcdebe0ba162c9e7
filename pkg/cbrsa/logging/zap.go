package logging

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const badKey = "!BADKEY"

// NewZap returns a Logger backed by the provided zap.Logger. Passing nil
// yields a no-op zap logger. Arguments follow the slog convention: either
// alternating keys and values, slog.Attr values, or zap.Field values.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

// NewZapConsole builds a human-readable zap logger writing to stderr at the
// given level ("debug", "info", "warn" or "error").
func NewZapConsole(level string) (Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}
	return NewZap(l), nil
}

type zapLogger struct {
	logger *zap.Logger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debug(msg, toFields(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info(msg, toFields(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warn(msg, toFields(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error(msg, toFields(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(toFields(args)...)}
}

func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch a := args[i].(type) {
		case zap.Field:
			fields = append(fields, a)
		case slog.Attr:
			fields = append(fields, zap.Any(a.Key, a.Value.Resolve().Any()))
		case string:
			if i+1 == len(args) {
				fields = append(fields, zap.String(badKey, a))
				continue
			}
			fields = append(fields, zap.Any(a, args[i+1]))
			i++
		default:
			fields = append(fields, zap.Any(badKey, a))
		}
	}
	return fields
}
