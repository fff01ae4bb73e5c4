// Package authn models the authenticated principal and the token
// validation boundary in front of it.
//
// A Principal is an immutable claim set - subject identifier, token ID and
// zero or more permission claims - produced once per request by validating
// an externally issued bearer token. TokenService implements that boundary
// with HMAC-SHA256 signed JWTs checked for signature, expiry, issuer and
// audience. The identity provider itself is an external collaborator; this
// package only consumes its output.
//
// # Request flow
//
//	validator, _ := authn.NewTokenService(cfg)
//
//	r := chi.NewRouter()
//	r.Use(authn.Middleware(validator))
//
// The middleware rejects unauthenticated requests with 401 before any
// handler runs and stores the principal in the request context, where the
// authorization layer (pkg/authz) and the execution context accessor
// (pkg/execctx) pick it up. Context storage keeps the principal strictly
// request-scoped.
//
// An optional RevocationChecker hooks a token denylist (e.g. Redis-backed
// logout) into validation.
package authn
