package authn

import (
	"context"
	"net/http"
	"strings"

	"github.com/meetspace/meetspace/pkg/problem"
)

// TokenExtractorFunc extracts a bearer token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc determines whether to skip authentication for a request.
type SkipFunc func(r *http.Request) bool

// RevocationChecker reports whether a token ID has been revoked.
// Implementations may perform I/O (e.g. a Redis lookup).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MiddlewareConfig configures authentication middleware behavior.
type MiddlewareConfig struct {
	Validator   *TokenService      // Token validation service
	Extractor   TokenExtractorFunc // Token extraction strategy (defaults to Bearer)
	Skip        SkipFunc           // Optional request filter to bypass authentication
	Revocations RevocationChecker  // Optional token denylist check
}

// Middleware creates authentication middleware with default Bearer token
// extraction. A request with a missing, malformed, expired or revoked token
// is rejected with 401 before any downstream handler runs.
func Middleware(validator *TokenService) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Validator: validator})
}

// MiddlewareWithConfig creates authentication middleware with custom
// configuration. On success the resolved principal is stored in the request
// context for the authorization step and the execution context accessor.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				problem.Write(w, problem.Unauthorized().WithInstance(r.URL.Path))
				return
			}

			principal, err := config.Validator.Validate(tokenString)
			if err != nil {
				problem.Write(w, problem.Unauthorized().WithInstance(r.URL.Path))
				return
			}

			if config.Revocations != nil {
				if tokenID := firstValue(principal, ClaimTypeTokenID); tokenID != "" {
					revoked, err := config.Revocations.IsRevoked(r.Context(), tokenID)
					if err != nil || revoked {
						problem.Write(w, problem.Unauthorized().WithInstance(r.URL.Path))
						return
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>"
// headers, the standard transport per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// HeaderTokenExtractor creates a token extractor for custom headers.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}

func firstValue(p Principal, claimType string) string {
	values := p.Values(claimType)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
