// Package pg provides PostgreSQL connectivity for the shared
// infrastructure bundle: pool construction with startup retries, embedded
// migration support with per-module version tables, health checks, and
// error classification helpers on top of pgx.
package pg
