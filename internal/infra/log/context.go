package logs

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
)

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestID extracts the request ID, empty when absent.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// FromContext returns the request-scoped logger, or fallback when none is set.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return fallback
}
