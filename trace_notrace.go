//go:build notrace

package dtd

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

var TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger adds a trace logger to the context - no-op version
func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(context.Context) *slog.Logger {
	return nullLogger
}
