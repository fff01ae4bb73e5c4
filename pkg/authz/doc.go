// Package authz implements the permission authorization protocol: a
// declarative Requirement evaluated against the claims of the request's
// principal, deciding allow or deny.
//
// The protocol is deliberately strict: a decision succeeds only when the
// principal carries a permission claim exactly equal (case-sensitive) to
// the required permission. There is no wildcard, prefix or hierarchy
// matching, and missing configuration fails closed.
//
// Policies is the registration surface - each named policy maps 1:1 to a
// Requirement, and endpoints declare which policy gates them:
//
//	policies := authz.NewPolicies()
//	policies.MustRegister("MeetingsCreate", "meetings.create")
//
//	r.With(authz.Require(policies, "MeetingsCreate")).Post("/meetings", h.create)
//
// Authentication failures are rejected upstream with 401 before evaluation
// runs; a deny here produces 403. Either way no module code executes for
// the rejected request.
package authz
