// Package config loads typed configuration structs from environment
// variables, with .env file support for local development.
//
// Each concern (database, HTTP server, tokens, email) declares its own
// config struct with `env` tags and defaults; the environment name itself
// (APP_ENV) selects runtime presets such as the logger format. Exact key
// names form an external contract with the deployment environment.
//
// Parsing is per-type-once: the first Load of a type reads the
// environment, later Loads return the cached value. Required keys that
// are missing fail the load - the entry point treats that as a fatal
// startup error rather than running with partial infrastructure.
package config
