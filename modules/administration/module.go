package administration

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

// Policy names for the proposal workflow.
const (
	PolicyPropose = "administration.proposals.propose"
	PolicyView    = "administration.proposals.view"
	PolicyAccept  = "administration.proposals.accept"
	PolicyReject  = "administration.proposals.reject"
)

// Module provides meeting group proposal administration.
type Module struct {
	handler  *handler
	policies *authz.Policies
}

// NewModule creates the administration module.
func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string { return "administration" }

func (m *Module) Init(ctx context.Context, infra *bootstrap.Infra) error {
	if infra.DB == nil {
		return ErrMissingPool
	}

	log := infra.Log.With(logger.Module(m.Name()))

	if err := pg.MigrateFS(ctx, infra.DB, migrationsFS, "migrations", "administration_schema_version", log); err != nil {
		return err
	}

	svc := &Service{
		store:   newStorage(infra.DB),
		execctx: infra.ExecCtx,
		log:     log,
	}
	m.handler = &handler{svc: svc, problems: infra.Problems}
	m.policies = infra.Policies

	for _, policy := range []string{PolicyPropose, PolicyView, PolicyAccept, PolicyReject} {
		if err := infra.Policies.Register(policy, policy); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) Routes(r chi.Router) {
	r.Route("/administration/proposals", func(r chi.Router) {
		r.With(authz.Require(m.policies, PolicyPropose)).Post("/", m.handler.propose)
		r.With(authz.Require(m.policies, PolicyView)).Get("/", m.handler.list)
		r.With(authz.Require(m.policies, PolicyView)).Get("/{proposalID}", m.handler.get)
		r.With(authz.Require(m.policies, PolicyAccept)).Post("/{proposalID}/accept", m.handler.accept)
		r.With(authz.Require(m.policies, PolicyReject)).Post("/{proposalID}/reject", m.handler.reject)
	})
}
