package authn_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetspace/meetspace/pkg/authn"
)

type fakeRevocations struct {
	revoked map[string]bool
	calls   int
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	f.calls++
	return f.revoked[tokenID], nil
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	okHandler := func(invoked *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*invoked = true
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token resolves principal", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Issue("user-42", []string{"meetings.view"})
		require.NoError(t, err)

		var invoked bool
		handler := authn.Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			invoked = true
			principal, ok := authn.PrincipalFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, "user-42", principal.Subject())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, invoked)
	})

	t.Run("missing token rejected before handler", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		handler := authn.Middleware(svc)(okHandler(&invoked))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, invoked)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	})

	t.Run("malformed authorization header rejected", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		handler := authn.Middleware(svc)(okHandler(&invoked))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, invoked)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		handler := authn.Middleware(svc)(okHandler(&invoked))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer garbage.token.value")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, invoked)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Issue("user-42", nil)
		require.NoError(t, err)

		principal, err := svc.Validate(token)
		require.NoError(t, err)
		tokenID := principal.Values(authn.ClaimTypeTokenID)[0]

		revocations := &fakeRevocations{revoked: map[string]bool{tokenID: true}}

		var invoked bool
		handler := authn.MiddlewareWithConfig(authn.MiddlewareConfig{
			Validator:   svc,
			Revocations: revocations,
		})(okHandler(&invoked))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, invoked)
		assert.Equal(t, 1, revocations.calls)
	})

	t.Run("skip bypasses authentication", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		handler := authn.MiddlewareWithConfig(authn.MiddlewareConfig{
			Validator: svc,
			Skip:      func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(okHandler(&invoked))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, invoked)
	})
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		p := authn.NewPrincipal(authn.Claim{Type: authn.ClaimTypeSubject, Value: "user-42"})
		ctx := authn.WithPrincipal(context.Background(), p)

		got, ok := authn.PrincipalFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "user-42", got.Subject())
	})

	t.Run("absent outside request scope", func(t *testing.T) {
		t.Parallel()
		_, ok := authn.PrincipalFromContext(context.Background())
		assert.False(t, ok)
	})
}
