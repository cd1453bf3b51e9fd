package middleware_test

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/platemenu/platemenu/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticID() string { return "req-123" }

func TestRequestMeta(t *testing.T) {
	tests := []struct {
		name       string
		reqHeaders map[string]string
		host       string
		expectedIP string
	}{
		{
			name:       "uses X-Forwarded-For first hop",
			reqHeaders: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			host:       testHostAddr,
			expectedIP: "203.0.113.7",
		},
		{
			name:       "uses single X-Forwarded-For value",
			reqHeaders: map[string]string{"X-Forwarded-For": " 203.0.113.7 "},
			host:       testHostAddr,
			expectedIP: "203.0.113.7",
		},
		{
			name:       "falls back to X-Real-IP",
			reqHeaders: map[string]string{"X-Real-IP": "198.51.100.2"},
			host:       testHostAddr,
			expectedIP: "198.51.100.2",
		},
		{
			name:       "falls back to host without port",
			reqHeaders: map[string]string{},
			host:       testHostAddr,
			expectedIP: "192.168.1.1",
		},
		{
			name:       "keeps portless host as-is",
			reqHeaders: map[string]string{},
			host:       "192.168.1.1",
			expectedIP: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.RequestMeta(staticID)

			ctx := newMockHumaContext()
			ctx.host = tt.host
			ctx.reqHeaders = tt.reqHeaders
			ctx.reqHeaders["User-Agent"] = testUserAgent

			var meta middleware.Meta

			mw(ctx, func(inner huma.Context) {
				meta = middleware.MetaFromContext(inner.Context())
			})

			assert.Equal(t, tt.expectedIP, meta.ClientIP)
			assert.Equal(t, testUserAgent, meta.UserAgent)
			assert.Equal(t, "req-123", meta.RequestID)
		})
	}
}

func TestMetaFromContext_Missing(t *testing.T) {
	meta := middleware.MetaFromContext(context.Background())

	assert.Equal(t, middleware.Meta{}, meta)
}

func TestPrincipalContext(t *testing.T) {
	ctx := middleware.ContextWithPrincipal(context.Background(), "user-42")

	require.Equal(t, "user-42", middleware.PrincipalFromContext(ctx))
	assert.Empty(t, middleware.PrincipalFromContext(context.Background()))
}
