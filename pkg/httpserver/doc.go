// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers, and structured logging via slog.
//
// Construction goes through New or NewFromConfig with functional Option
// helpers such as WithAddr and WithShutdownTimeout. Run blocks until the
// context is cancelled or an interrupt/TERM signal arrives, then drains
// in-flight requests within the shutdown deadline.
//
// All public errors are wrapped with the ErrStart and ErrShutdown sentinels
// so callers can inspect them with errors.Is.
package httpserver
