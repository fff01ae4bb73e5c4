package httpserver

import "errors"

var (
	// ErrStart indicates the server could not start or exited abnormally.
	ErrStart = errors.New("failed to start server")

	// ErrShutdown indicates the server did not stop gracefully within
	// the shutdown timeout.
	ErrShutdown = errors.New("failed to shutdown server gracefully")
)
