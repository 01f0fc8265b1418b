package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached with WithLogger, or the default
// logger when ctx carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Attach creates a logger writing to w at level and returns ctx carrying it.
// Each command invocation attaches its own.
func Attach(ctx context.Context, w io.Writer, level string) context.Context {
	return WithLogger(ctx, NewWithWriter(w, level))
}
