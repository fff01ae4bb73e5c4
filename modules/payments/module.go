package payments

import (
	"context"
	"embed"

	"github.com/go-chi/chi/v5"

	"github.com/meetspace/meetspace/pkg/authz"
	"github.com/meetspace/meetspace/pkg/bootstrap"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/pg"
	"github.com/meetspace/meetspace/pkg/secrets"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Policy names for payment operations.
const (
	PolicyRecord = "payments.record"
	PolicyView   = "payments.view"
)

// Module provides the subscription payments ledger.
type Module struct {
	handler  *handler
	policies *authz.Policies
}

// NewModule creates the payments module.
func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string { return "payments" }

func (m *Module) Init(ctx context.Context, infra *bootstrap.Infra) error {
	if infra.DB == nil {
		return ErrMissingPool
	}
	if len(infra.EncryptKey) == 0 {
		return ErrMissingEncryptKey
	}

	log := infra.Log.With(logger.Module(m.Name()))

	if err := pg.MigrateFS(ctx, infra.DB, migrationsFS, "migrations", "payments_schema_version", log); err != nil {
		return err
	}

	cipher, err := secrets.ForModule(infra.EncryptKey, m.Name())
	if err != nil {
		return err
	}

	svc := &Service{
		store:   newStorage(infra.DB),
		cipher:  cipher,
		mailer:  infra.Email,
		execctx: infra.ExecCtx,
		log:     log,
	}
	m.handler = &handler{svc: svc, problems: infra.Problems}
	m.policies = infra.Policies

	for _, policy := range []string{PolicyRecord, PolicyView} {
		if err := infra.Policies.Register(policy, policy); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) Routes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.With(authz.Require(m.policies, PolicyRecord)).Post("/", m.handler.record)
		r.With(authz.Require(m.policies, PolicyView)).Get("/", m.handler.listMine)
	})
}
