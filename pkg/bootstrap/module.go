package bootstrap

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// Module is the contract every bounded-context module satisfies to be
// composed into the process. Instances are known statically at build time
// and listed in declared order at the process entry point.
type Module interface {
	// Name identifies the module in logs and composition errors.
	Name() string

	// Init performs the module's internal wiring: storage setup, schema
	// migration, policy registration. It runs exactly once per process
	// lifetime, strictly before the first request is accepted, and may
	// block (connection tests, schema setup) during that window. It must
	// depend only on the shared infrastructure bundle, never on another
	// module's runtime objects.
	Init(ctx context.Context, infra *Infra) error

	// Routes mounts the module's HTTP endpoints. Called after every
	// module initialized successfully.
	Routes(r chi.Router)
}
