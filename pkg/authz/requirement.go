package authz

import "github.com/meetspace/meetspace/pkg/authn"

// Requirement is an immutable named policy value: the permission a
// principal must hold for a request to pass. Created once at policy
// registration time and shared by every request it gates.
type Requirement struct {
	Permission string
}

// NewRequirement creates a permission requirement.
func NewRequirement(permission string) Requirement {
	return Requirement{Permission: permission}
}

// Decision is the outcome of evaluating a requirement against a principal.
type Decision struct {
	Succeeded bool
}

// Evaluate decides whether the principal satisfies the requirement:
// it succeeds iff the principal carries a permission claim exactly equal
// to the required permission. Case-sensitive, no prefix or hierarchy
// matching. An empty required permission is a configuration error and
// fails closed, as does a principal with no permission claims.
//
// Evaluate is a pure function of its inputs: no internal state, no I/O,
// safe to invoke concurrently for arbitrarily many requests.
func Evaluate(requirement Requirement, principal authn.Principal) Decision {
	if requirement.Permission == "" {
		return Decision{}
	}
	return Decision{Succeeded: principal.HasPermission(requirement.Permission)}
}
