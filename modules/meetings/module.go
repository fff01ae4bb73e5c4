package meetings

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

// Policy names gating the module's endpoints. Matching is exact, so these
// literals are the single source of truth for both registration and route
// declarations.
const (
	PolicyCreate = "meetings.create"
	PolicyView   = "meetings.view"
	PolicyJoin   = "meetings.join"
	PolicyDelete = "meetings.delete"
)

// Module provides meeting scheduling and attendance.
type Module struct {
	handler  *handler
	policies *authz.Policies
}

// NewModule creates the meetings module.
func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string { return "meetings" }

func (m *Module) Init(ctx context.Context, infra *bootstrap.Infra) error {
	if infra.DB == nil {
		return ErrMissingPool
	}

	log := infra.Log.With(logger.Module(m.Name()))

	if err := pg.MigrateFS(ctx, infra.DB, migrationsFS, "migrations", "meetings_schema_version", log); err != nil {
		return err
	}

	svc := &Service{
		store:   newStorage(infra.DB),
		execctx: infra.ExecCtx,
		log:     log,
	}
	m.handler = &handler{svc: svc, problems: infra.Problems}
	m.policies = infra.Policies

	for _, policy := range []string{PolicyCreate, PolicyView, PolicyJoin, PolicyDelete} {
		if err := infra.Policies.Register(policy, policy); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) Routes(r chi.Router) {
	r.Route("/meetings", func(r chi.Router) {
		r.With(authz.Require(m.policies, PolicyView)).Get("/", m.handler.list)
		r.With(authz.Require(m.policies, PolicyView)).Get("/{meetingID}", m.handler.get)
		r.With(authz.Require(m.policies, PolicyCreate)).Post("/", m.handler.create)
		r.With(authz.Require(m.policies, PolicyJoin)).Post("/{meetingID}/attendees", m.handler.join)
		r.With(authz.Require(m.policies, PolicyJoin)).Delete("/{meetingID}/attendees", m.handler.leave)
		r.With(authz.Require(m.policies, PolicyDelete)).Delete("/{meetingID}", m.handler.delete)
	})
}
