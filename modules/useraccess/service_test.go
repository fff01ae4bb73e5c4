package useraccess

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/problem"
)

type fakeStore struct {
	users   map[string]User
	nextErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]User)}
}

func (f *fakeStore) CreateUser(_ context.Context, u User) error {
	if f.nextErr != nil {
		return f.nextErr
	}
	if _, exists := f.users[u.Email]; exists {
		return errors.New("duplicate")
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (User, error) {
	u, ok := f.users[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (f *fakeStore) ListUsers(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeIssuer struct {
	subject     string
	permissions []string
}

func (f *fakeIssuer) Issue(subject string, permissions []string) (string, error) {
	f.subject = subject
	f.permissions = permissions
	return "token-" + subject, nil
}

type fakeRevoker struct {
	revoked []string
}

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string) error {
	f.revoked = append(f.revoked, tokenID)
	return nil
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog(fstest.MapFS{"roles.yaml": &fstest.MapFile{Data: []byte(`
roles:
  member:
    permissions: [meetings.view, meetings.join]
  organizer:
    inherits: [member]
    permissions: [meetings.create]
`)}}, "roles.yaml")
	require.NoError(t, err)
	return catalog
}

func newTestService(t *testing.T) (*Service, *fakeStore, *fakeIssuer, *fakeRevoker) {
	t.Helper()
	store := newFakeStore()
	issuer := &fakeIssuer{}
	revoker := &fakeRevoker{}
	svc := &Service{
		store:   store,
		catalog: testCatalog(t),
		tokens:  issuer,
		revoke:  revoker,
		execctx: execctx.NewAccessor(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, store, issuer, revoker
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user with hashed password", func(t *testing.T) {
		t.Parallel()

		svc, store, _, _ := newTestService(t)
		user, err := svc.Register(context.Background(), RegisterParams{
			Email:    "alice@example.com",
			Password: "correct horse battery",
			Role:     "organizer",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
		assert.Len(t, store.users, 1)
	})

	t.Run("collects field errors", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestService(t)
		_, err := svc.Register(context.Background(), RegisterParams{
			Email:    "not-an-email",
			Password: "short",
			Role:     "ghost",
		})

		var verr problem.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("email"))
		assert.True(t, verr.Has("password"))
		assert.True(t, verr.Has("role"))
	})

	t.Run("empty fields", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newTestService(t)
		_, err := svc.Register(context.Background(), RegisterParams{})

		var verr problem.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("email"))
		assert.True(t, verr.Has("role"))
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	registered := func(t *testing.T) (*Service, *fakeIssuer, *fakeRevoker) {
		t.Helper()
		svc, _, issuer, revoker := newTestService(t)
		_, err := svc.Register(context.Background(), RegisterParams{
			Email:    "alice@example.com",
			Password: "correct horse battery",
			Role:     "organizer",
		})
		require.NoError(t, err)
		return svc, issuer, revoker
	}

	t.Run("issues token with effective permissions", func(t *testing.T) {
		t.Parallel()

		svc, issuer, _ := registered(t)
		token, err := svc.Login(context.Background(), "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.Equal(t, []string{"meetings.create", "meetings.join", "meetings.view"}, issuer.permissions)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := registered(t)

		_, errWrongPassword := svc.Login(context.Background(), "alice@example.com", "nope nope nope")
		_, errUnknownEmail := svc.Login(context.Background(), "ghost@example.com", "nope nope nope")

		var p1, p2 problem.Problem
		require.ErrorAs(t, errWrongPassword, &p1)
		require.ErrorAs(t, errUnknownEmail, &p2)
		assert.Equal(t, p1, p2)
		assert.Equal(t, 401, p1.Status)
	})
}

func TestServiceLogout(t *testing.T) {
	t.Parallel()

	t.Run("revokes the current token ID", func(t *testing.T) {
		t.Parallel()

		svc, _, _, revoker := newTestService(t)
		ctx := authn.WithPrincipal(context.Background(), authn.NewPrincipal(
			authn.Claim{Type: authn.ClaimTypeSubject, Value: uuid.NewString()},
			authn.Claim{Type: authn.ClaimTypeTokenID, Value: "jti-123"},
		))

		require.NoError(t, svc.Logout(ctx))
		assert.Equal(t, []string{"jti-123"}, revoker.revoked)
	})

	t.Run("rejects anonymous context", func(t *testing.T) {
		t.Parallel()

		svc, _, _, revoker := newTestService(t)
		err := svc.Logout(context.Background())

		var p problem.Problem
		require.ErrorAs(t, err, &p)
		assert.Equal(t, 401, p.Status)
		assert.Empty(t, revoker.revoked)
	})
}

func TestServiceCurrentUser(t *testing.T) {
	t.Parallel()

	svc, store, _, _ := newTestService(t)
	user := User{ID: uuid.New(), Email: "alice@example.com", Role: "member", CreatedAt: time.Now()}
	store.users[user.Email] = user

	ctx := authn.WithPrincipal(context.Background(), authn.NewPrincipal(
		authn.Claim{Type: authn.ClaimTypeSubject, Value: user.ID.String()},
	))

	got, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.CurrentUser(context.Background())
	var p problem.Problem
	require.ErrorAs(t, err, &p)
	assert.Equal(t, 401, p.Status)
}
