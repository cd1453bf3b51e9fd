package middleware

import "context"

type principalKey struct{}

// ContextWithPrincipal records the authenticated caller's id on the
// context. The authentication layer (an external collaborator) calls
// this after validating a session; the admission middleware reads it to
// scope quotas per principal instead of per client address.
func ContextWithPrincipal(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, principalKey{}, id)
}

// PrincipalFromContext returns the authenticated caller's id, or ""
// when the request is anonymous.
func PrincipalFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(principalKey{}).(string); ok {
		return v
	}

	return ""
}
