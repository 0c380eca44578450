// go-utils/context_keys.go

package utils

import "context"

// ctxKey is unexported to prevent collisions.
type ctxKey string

// CtxKeyRequestID stores the per-request correlation id.
const CtxKeyRequestID ctxKey = "requestID"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// RequestIDFromContext returns "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxKeyRequestID).(string)
	return id
}
