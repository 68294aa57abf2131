// Package logging carries a run-scoped *slog.Logger through context, so
// services can log with the upload/user fields attached by the caller.
package logging

import (
	"context"
	"log/slog"
)

// contextKey is unexported to prevent collisions with other packages' keys.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to the
// process default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
