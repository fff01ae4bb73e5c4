package useraccess

import (
	"context"
	"embed"

	"github.com/go-chi/chi/v5"

	"github.com/meetspace/meetspace/pkg/authz"
	"github.com/meetspace/meetspace/pkg/bootstrap"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/pg"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

//go:embed roles.yaml
var catalogFS embed.FS

// PolicyUsersView gates the user listing endpoint.
const PolicyUsersView = "useraccess.users.view"

// Module provides accounts, the role catalog, token issuance and revocation.
type Module struct {
	handler     *handler
	policies    *authz.Policies
	revocations *RevocationStore
}

// NewModule creates the useraccess module.
func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string { return "useraccess" }

// Init applies the module schema, loads the role catalog and registers the
// module's policies.
func (m *Module) Init(ctx context.Context, infra *bootstrap.Infra) error {
	if infra.DB == nil {
		return ErrMissingPool
	}
	if infra.Redis == nil {
		return ErrMissingRedis
	}

	log := infra.Log.With(logger.Module(m.Name()))

	if err := pg.MigrateFS(ctx, infra.DB, migrationsFS, "migrations", "useraccess_schema_version", log); err != nil {
		return err
	}

	catalog, err := LoadCatalog(catalogFS, "roles.yaml")
	if err != nil {
		return err
	}

	m.revocations = NewRevocationStore(infra.Redis, infra.Tokens.AccessTTL())

	svc := &Service{
		store:   newStorage(infra.DB),
		catalog: catalog,
		tokens:  infra.Tokens,
		revoke:  m.revocations,
		execctx: infra.ExecCtx,
		log:     log,
	}
	m.handler = &handler{svc: svc, problems: infra.Problems}
	m.policies = infra.Policies

	return infra.Policies.Register(PolicyUsersView, PolicyUsersView)
}

// Routes mounts the module's endpoints. Register and login are public;
// everything else assumes the authentication middleware already ran.
func (m *Module) Routes(r chi.Router) {
	r.Route("/useraccess", func(r chi.Router) {
		r.Post("/register", m.handler.register)
		r.Post("/login", m.handler.login)
		r.Post("/logout", m.handler.logout)
		r.Get("/me", m.handler.me)
		r.With(authz.Require(m.policies, PolicyUsersView)).Get("/users", m.handler.listUsers)
	})
}

// Revocations exposes the token denylist for the authentication middleware.
// Valid only after Init.
func (m *Module) Revocations() *RevocationStore {
	return m.revocations
}
