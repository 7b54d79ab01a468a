package logger

import (
	"context"
	"log/slog"
)

// loggerKey is the context key under which a request-scoped logger travels.
type loggerKey struct{}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from the context, if one is present.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault extracts the logger from the context, falling back
// to the provided default (or slog.Default if that is nil too). Components
// use this so callers can thread a request-scoped logger through without
// every constructor needing one.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
