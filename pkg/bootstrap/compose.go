package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrIncompleteInfra indicates the shared infrastructure bundle is
	// missing a required component; composition never starts.
	ErrIncompleteInfra = errors.New("bootstrap: incomplete infrastructure bundle")

	// ErrDuplicateModule indicates two modules in the declared list share a name.
	ErrDuplicateModule = errors.New("bootstrap: duplicate module name")

	// ErrModuleInit wraps the first module initialization failure.
	ErrModuleInit = errors.New("bootstrap: module initialization failed")
)

// Compose runs the one-time composition phase: it validates the shared
// infrastructure bundle, then invokes each module's Init exactly once, in
// declared order, single-threaded. Later modules may rely on earlier
// modules' side effects (shared schema setup) being complete.
//
// The first failure stops the run - no subsequent module is initialized -
// and the error is returned for the process entry point to treat as fatal.
// Partial startup is not a supported state.
//
// Compose is meant to run exactly once per process; the entry point, not
// Compose itself, is responsible for not re-invoking it.
func Compose(ctx context.Context, infra *Infra, modules ...Module) error {
	if err := infra.validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if _, dup := seen[m.Name()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, m.Name())
		}
		seen[m.Name()] = struct{}{}
	}

	for i, m := range modules {
		infra.Log.InfoContext(ctx, "initializing module",
			slog.String("module", m.Name()),
			slog.Int("position", i+1),
			slog.Int("total", len(modules)),
		)

		if err := m.Init(ctx, infra); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrModuleInit, m.Name(), err)
		}

		infra.Log.InfoContext(ctx, "module initialized", slog.String("module", m.Name()))
	}

	return nil
}
