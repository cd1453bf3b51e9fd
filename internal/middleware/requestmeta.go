package middleware

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Meta holds per-request metadata used for identity fallback, logging,
// and denial auditing.
type Meta struct {
	ClientIP  string
	UserAgent string
	RequestID string
}

type metaKey struct{}

// ContextWithMeta adds request metadata to context.
func ContextWithMeta(ctx context.Context, meta Meta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// MetaFromContext extracts request metadata from context.
func MetaFromContext(ctx context.Context) Meta {
	if v, ok := ctx.Value(metaKey{}).(Meta); ok {
		return v
	}

	return Meta{}
}

// RequestMeta is a middleware that resolves the client IP, captures the
// User-Agent, and assigns a request id from the given generator.
func RequestMeta(generateID func() string) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := Meta{
			ClientIP:  extractClientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
			RequestID: generateID(),
		}

		newCtx := ContextWithMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

func extractClientIP(ctx huma.Context) string {
	// X-Forwarded-For may contain multiple IPs; the first is the
	// original client.
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	host := ctx.Host()
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		return host[:idx]
	}

	return host
}
