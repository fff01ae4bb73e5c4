package bootstrap

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/authz"
	"github.com/meetspace/meetspace/pkg/email"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/problem"
)

// Infra is the shared infrastructure bundle handed to every module's Init.
// It is constructed once at process start, passed by reference (never
// copied), and treated as read-only after composition completes - which
// makes it safe to read concurrently from all request goroutines without
// locking.
type Infra struct {
	// ConnString is the PostgreSQL connection string, for modules that
	// manage their own schema objects.
	ConnString string

	// DB is the shared connection pool.
	DB *pgxpool.Pool

	// Redis is the shared Redis client, nil when not configured.
	Redis *redis.Client

	// ExecCtx resolves the current user for module business logic.
	ExecCtx *execctx.Accessor

	// Log is the process logger; modules derive their own with
	// Log.With("module", name).
	Log *slog.Logger

	// Email sends transactional email; EmailConfig carries the sender
	// identity ("from" address) modules may need for rendering.
	Email       email.EmailSender
	EmailConfig email.Config

	// Tokens issues and validates access tokens (useraccess module).
	Tokens *authn.TokenService

	// Policies is the process-wide policy table modules register their
	// named policies into during Init.
	Policies *authz.Policies

	// Problems maps module errors to response payloads.
	Problems *problem.Mapper

	// EncryptKey is the application text-encryption key for modules
	// storing sensitive values at rest.
	EncryptKey []byte
}

// validate checks the bundle carries everything composition itself relies
// on. Storage handles are module concerns: a module requiring the pool
// fails its own Init when it is absent.
func (i *Infra) validate() error {
	switch {
	case i == nil:
		return ErrIncompleteInfra
	case i.Log == nil:
		return ErrIncompleteInfra
	case i.ExecCtx == nil:
		return ErrIncompleteInfra
	case i.Policies == nil:
		return ErrIncompleteInfra
	}
	return nil
}
