package useraccess

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/pg"
	"github.com/meetspace/meetspace/pkg/problem"
)

const minPasswordLength = 8

type tokenIssuer interface {
	Issue(subject string, permissions []string) (string, error)
}

type revoker interface {
	Revoke(ctx context.Context, tokenID string) error
}

// Service implements registration, login and session revocation.
type Service struct {
	store   userStore
	catalog *Catalog
	tokens  tokenIssuer
	revoke  revoker
	execctx *execctx.Accessor
	log     *slog.Logger
}

// RegisterParams carries a registration request.
type RegisterParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register validates and creates a new account. The password is stored as a
// bcrypt hash only.
func (s *Service) Register(ctx context.Context, params RegisterParams) (User, error) {
	verr := problem.NewValidationErrors()
	if params.Email == "" {
		verr.Add("email", "Email is required.")
	} else if _, err := mail.ParseAddress(params.Email); err != nil {
		verr.Add("email", "Email must be a valid email address.")
	}
	if len(params.Password) < minPasswordLength {
		verr.Add("password", "Password must be at least 8 characters long.")
	}
	if params.Role == "" {
		verr.Add("role", "Role is required.")
	} else if !s.catalog.HasRole(params.Role) {
		verr.Add("role", "Role is not defined.")
	}
	if !verr.IsEmpty() {
		return User{}, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         params.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return User{}, problem.NewRuleError("email_already_registered", "An account with this email already exists.")
		}
		return User{}, err
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(user.ID.String()), slog.String("role", user.Role))
	return user, nil
}

// Login verifies credentials and issues an access token carrying the user's
// effective permissions. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", problem.Unauthorized().WithDetail("Invalid email or password.")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", problem.Unauthorized().WithDetail("Invalid email or password.")
	}

	permissions, err := s.catalog.EffectivePermissions(user.Role)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID.String(), permissions)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "user logged in", logger.UserID(user.ID.String()))
	return token, nil
}

// Logout revokes the current token by putting its ID on the denylist. The
// token keeps its claims but fails authentication from now on.
func (s *Service) Logout(ctx context.Context) error {
	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		return problem.Unauthorized()
	}
	tokenIDs := principal.Values(authn.ClaimTypeTokenID)
	if len(tokenIDs) == 0 {
		return problem.Unauthorized()
	}

	if err := s.revoke.Revoke(ctx, tokenIDs[0]); err != nil {
		return err
	}

	if userID, ok := s.execctx.CurrentUserID(ctx); ok {
		s.log.InfoContext(ctx, "user logged out", logger.UserID(userID))
	}
	return nil
}

// CurrentUser loads the account of the authenticated caller.
func (s *Service) CurrentUser(ctx context.Context) (User, error) {
	userID, ok := s.execctx.CurrentUserID(ctx)
	if !ok {
		return User{}, problem.Unauthorized()
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return User{}, problem.Unauthorized()
	}
	return s.store.FindByID(ctx, id)
}

// ListUsers returns all registered accounts.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.store.ListUsers(ctx)
}
