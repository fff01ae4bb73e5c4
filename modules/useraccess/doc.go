// Package useraccess is the identity bounded context: accounts, the role
// catalog, access token issuance and token revocation.
//
// Roles are defined in an embedded YAML catalog with optional inheritance.
// The catalog is resolved once at module init; a user's effective
// permissions are flattened into the access token at login, one permission
// claim per granted permission. Logout places the token ID on a Redis
// denylist checked by the authentication middleware.
package useraccess
