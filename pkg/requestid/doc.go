// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// Middleware attaches an ID to every request: a valid client supplied
// "X-Request-ID" header is reused, otherwise a new UUID is generated. The ID
// travels in the request context (WithContext / FromContext) and is echoed
// back to the client. LoggerExtractor integrates the ID into slog records so
// log lines from the same request can be correlated.
//
// The package does not return errors. Invalid client IDs are silently
// replaced with a fresh UUID.
package requestid
