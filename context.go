package oneclient

import (
	"context"

	"github.com/enterpriseone/oneclient/internal/httpx"
)

// WithRequestID attaches a caller-chosen request ID to ctx. The ID is
// sent as X-Request-ID on every request made under ctx and recorded on
// audit events; without one, each request gets a fresh UUID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpx.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID attached to ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	return httpx.RequestIDFromContext(ctx)
}
