package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetspace/meetspace/pkg/authz"
)

func TestPoliciesRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers and resolves", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		require.NoError(t, policies.Register("MeetingsCreate", "meetings.create"))

		req, err := policies.Get("MeetingsCreate")
		require.NoError(t, err)
		assert.Equal(t, "meetings.create", req.Permission)
		assert.Equal(t, 1, policies.Len())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		require.ErrorIs(t, policies.Register("", "meetings.create"), authz.ErrEmptyPolicyName)
	})

	t.Run("rejects empty permission", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		require.ErrorIs(t, policies.Register("MeetingsCreate", ""), authz.ErrEmptyPermission)
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		require.NoError(t, policies.Register("MeetingsCreate", "meetings.create"))
		require.ErrorIs(t, policies.Register("MeetingsCreate", "meetings.create"), authz.ErrDuplicatePolicy)
	})

	t.Run("unknown policy", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		_, err := policies.Get("Nope")
		require.ErrorIs(t, err, authz.ErrUnknownPolicy)
	})

	t.Run("must register panics on error", func(t *testing.T) {
		t.Parallel()
		policies := authz.NewPolicies()
		assert.Panics(t, func() { policies.MustRegister("", "meetings.create") })
	})
}
