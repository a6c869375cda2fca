package contextutil

import "context"

// GetRequestID reads the request ID injected by the middleware.
// Empty string means the call did not come through HTTP.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects an ID into the context (also handy in tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
