package authz

import (
	"net/http"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/problem"
)

// Require creates middleware gating an endpoint with a named policy.
// The policy name is resolved against the table once, at route
// registration time, so a typo or missing registration panics at startup
// instead of silently allowing or denying at request time.
//
// A request without an authenticated principal gets 401; a principal
// failing the requirement gets 403. In both cases no downstream handler
// runs and no side effects are performed on behalf of the request.
func Require(policies *Policies, policyName string) func(next http.Handler) http.Handler {
	requirement, err := policies.Get(policyName)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := authn.PrincipalFromContext(r.Context())
			if !ok {
				// Authentication failure, not an authorization decision.
				problem.Write(w, problem.Unauthorized().WithInstance(r.URL.Path))
				return
			}

			if decision := Evaluate(requirement, principal); !decision.Succeeded {
				problem.Write(w, problem.Forbidden().WithInstance(r.URL.Path))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates an endpoint with an inline requirement, without
// going through the named policy table. Useful in tests and for
// module-internal routes.
func RequirePermission(permission string) func(next http.Handler) http.Handler {
	requirement := NewRequirement(permission)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := authn.PrincipalFromContext(r.Context())
			if !ok {
				problem.Write(w, problem.Unauthorized().WithInstance(r.URL.Path))
				return
			}

			if decision := Evaluate(requirement, principal); !decision.Succeeded {
				problem.Write(w, problem.Forbidden().WithInstance(r.URL.Path))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
