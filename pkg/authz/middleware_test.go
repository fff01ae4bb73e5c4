package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/authz"
)

func gatedRequest(t *testing.T, handler http.Handler, principal *authn.Principal) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/meetings", nil)
	if principal != nil {
		req = req.WithContext(authn.WithPrincipal(req.Context(), *principal))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequire(t *testing.T) {
	t.Parallel()

	policies := authz.NewPolicies()
	policies.MustRegister("MeetingsCreate", "meetings.create")

	var invoked bool
	handler := authz.Require(policies, "MeetingsCreate")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoked = true
		w.WriteHeader(http.StatusCreated)
	}))

	t.Run("allowed", func(t *testing.T) {
		invoked = false
		p := principalWith("meetings.create")
		rec := gatedRequest(t, handler, &p)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, invoked)
	})

	t.Run("denied with 403, handler never runs", func(t *testing.T) {
		invoked = false
		p := principalWith("meetings.view")
		rec := gatedRequest(t, handler, &p)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, invoked)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	})

	t.Run("unauthenticated gets 401, handler never runs", func(t *testing.T) {
		invoked = false
		rec := gatedRequest(t, handler, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, invoked)
	})

	t.Run("unregistered policy panics at registration", func(t *testing.T) {
		assert.Panics(t, func() { authz.Require(policies, "NoSuchPolicy") })
	})
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	handler := authz.RequirePermission("payments.record")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed", func(t *testing.T) {
		t.Parallel()
		p := principalWith("payments.record")
		rec := gatedRequest(t, handler, &p)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		t.Parallel()
		p := principalWith("payments.view")
		rec := gatedRequest(t, handler, &p)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
