package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// unexported key type keeps context values collision-safe
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
)

// WithLogger stores a request-scoped logger so services and repos can
// log with request metadata without knowing about Gin.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger, or the global one when
// the context carries none.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}
