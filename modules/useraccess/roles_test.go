package useraccess_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetspace/meetspace/modules/useraccess"
)

func catalogFS(yaml string) fstest.MapFS {
	return fstest.MapFS{"roles.yaml": &fstest.MapFile{Data: []byte(yaml)}}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("resolves inheritance", func(t *testing.T) {
		t.Parallel()

		fsys := catalogFS(`
roles:
  member:
    permissions:
      - meetings.view
      - meetings.join
  organizer:
    inherits:
      - member
    permissions:
      - meetings.create
`)
		catalog, err := useraccess.LoadCatalog(fsys, "roles.yaml")
		require.NoError(t, err)

		perms, err := catalog.EffectivePermissions("organizer")
		require.NoError(t, err)
		assert.Equal(t, []string{"meetings.create", "meetings.join", "meetings.view"}, perms)

		perms, err = catalog.EffectivePermissions("member")
		require.NoError(t, err)
		assert.Equal(t, []string{"meetings.join", "meetings.view"}, perms)
	})

	t.Run("deduplicates across branches", func(t *testing.T) {
		t.Parallel()

		fsys := catalogFS(`
roles:
  a:
    permissions: [shared.perm]
  b:
    permissions: [shared.perm]
  c:
    inherits: [a, b]
    permissions: [own.perm]
`)
		catalog, err := useraccess.LoadCatalog(fsys, "roles.yaml")
		require.NoError(t, err)

		perms, err := catalog.EffectivePermissions("c")
		require.NoError(t, err)
		assert.Equal(t, []string{"own.perm", "shared.perm"}, perms)
	})

	t.Run("rejects inheritance cycle", func(t *testing.T) {
		t.Parallel()

		fsys := catalogFS(`
roles:
  a:
    inherits: [b]
  b:
    inherits: [a]
`)
		_, err := useraccess.LoadCatalog(fsys, "roles.yaml")
		assert.ErrorIs(t, err, useraccess.ErrRoleCatalogInvalid)
	})

	t.Run("rejects unknown parent", func(t *testing.T) {
		t.Parallel()

		fsys := catalogFS(`
roles:
  a:
    inherits: [ghost]
`)
		_, err := useraccess.LoadCatalog(fsys, "roles.yaml")
		assert.ErrorIs(t, err, useraccess.ErrRoleCatalogInvalid)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		t.Parallel()

		_, err := useraccess.LoadCatalog(catalogFS("roles: {}"), "roles.yaml")
		assert.ErrorIs(t, err, useraccess.ErrRoleCatalogEmpty)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := useraccess.LoadCatalog(fstest.MapFS{}, "roles.yaml")
		assert.ErrorIs(t, err, useraccess.ErrRoleCatalogUnreadable)
	})

	t.Run("unknown role lookup", func(t *testing.T) {
		t.Parallel()

		catalog, err := useraccess.LoadCatalog(catalogFS("roles:\n  a:\n    permissions: [x]"), "roles.yaml")
		require.NoError(t, err)

		_, err = catalog.EffectivePermissions("ghost")
		assert.ErrorIs(t, err, useraccess.ErrUnknownRole)
		assert.False(t, catalog.HasRole("ghost"))
		assert.True(t, catalog.HasRole("a"))
	})
}

func TestCatalogRoles(t *testing.T) {
	t.Parallel()

	catalog, err := useraccess.LoadCatalog(catalogFS(`
roles:
  member:
    permissions: [meetings.view]
  organizer:
    inherits: [member]
    permissions: [meetings.create]
`), "roles.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"member", "organizer"}, catalog.Roles())
}
