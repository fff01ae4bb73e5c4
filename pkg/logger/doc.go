// Package logger builds the process logger on top of log/slog.
//
// The factory produces a slog.Logger with a JSON or text handler, static
// service attributes, and a decorating handler that injects request-scoped
// attributes (request ID, user ID) extracted from context at log time.
// The logger is constructed once at startup and passed explicitly into the
// composition bootstrap - there is no ambient static logger state.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "meetspace"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
package logger
