package logging

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
)

type contextKey string

const loggerKey = contextKey("kyat.logger")

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

// DefaultLogger writes to stderr with the "Kyat: " message prefix
func DefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger(os.Stderr, "Kyat: ", log.LstdFlags|log.Lmsgprefix)
	})
	return defaultLogger
}

func NewLogger(w io.Writer, prefix string, flag int) *log.Logger {
	return log.New(w, prefix, flag)
}

// Discard returns a logger that drops every message
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return DefaultLogger()
}
