// Package bootstrap is the module composition root: the one place where
// the full object graph is assembled at process start.
//
// The sequence is deliberately rigid. The entry point builds the shared
// Infra bundle (failing fast on missing configuration), declares the
// bounded-context modules in a fixed order, and calls Compose once.
// Compose initializes each module sequentially, stops at the first
// failure, and returns an error the caller treats as fatal. After it
// returns nil the composed graph is immutable for the life of the
// process; no re-wiring happens while requests are served.
//
//	infra := &bootstrap.Infra{...}
//	err := bootstrap.Compose(ctx, infra,
//		useraccess.New(),
//		meetings.New(),
//		administration.New(),
//		payments.New(),
//	)
//	if err != nil {
//		log.Error("composition failed", slog.Any("error", err))
//		os.Exit(1)
//	}
//
// Modules are first-class values rather than static init entry points,
// which keeps composition order and failure injection testable without
// global state.
package bootstrap
