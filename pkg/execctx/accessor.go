package execctx

import (
	"context"

	"github.com/meetspace/meetspace/pkg/authn"
)

// Accessor is the single handle modules use to learn who is making the
// current call, without re-implementing token parsing. One instance is
// built at composition time and shared read-only by every module.
//
// Identity is resolved from the request context, not from any ambient
// process state, so two concurrent requests can never observe each
// other's identity.
type Accessor struct{}

// NewAccessor creates an execution context accessor.
func NewAccessor() *Accessor {
	return &Accessor{}
}

// CurrentUserID resolves the identifier of the user behind the current
// call. The principal stored in the context is immutable, so every call
// within one request returns the same value. Outside request scope
// (startup, background jobs) the second return value is false - an
// explicit "no user", never an error and never a stale value.
func (a *Accessor) CurrentUserID(ctx context.Context) (string, bool) {
	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		return "", false
	}
	subject := principal.Subject()
	if subject == "" {
		return "", false
	}
	return subject, true
}
