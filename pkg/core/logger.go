package core

import (
	"fmt"
	"log/slog"
	"strings"
)

// slogLogger implements Logger on top of a structured slog.Logger
type slogLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a Logger that writes through slog.Default()
func NewDefaultLogger() Logger {
	return NewSlogLogger(slog.Default())
}

// NewSlogLogger adapts a slog.Logger to the Logger interface
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Printf(format string, args ...interface{}) {
	l.logger.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
