package logger

import (
	"io"
	"log/slog"
	"os"

	ports "splitwise-platform/internal/domain/ports/output"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
	envTest  = "test"
)

// Logger adapts *slog.Logger to ports.Logger.
type Logger struct {
	*slog.Logger
}

func New(env string) *Logger {
	var h slog.Handler
	switch env {
	case envLocal:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envDev:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case envTest:
		h = slog.NewTextHandler(io.Discard, nil)
	default:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(h)}
}

// NewWithHandler is used by tests that need to inspect log output.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{Logger: slog.New(h)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
