// Package redis provides Redis connection management with environment-based
// configuration, bounded connection retries and a readiness probe.
package redis
