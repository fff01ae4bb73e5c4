package authn

import "context"

// principalCtxKey is a private context key type to avoid collisions.
type principalCtxKey struct{}

// WithPrincipal stores the authenticated principal in the context.
// The value is request-scoped: it lives only in the request's context
// chain and can never leak into another request.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromContext retrieves the authenticated principal from the
// context. The second return value is false outside an authenticated
// request scope.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}
