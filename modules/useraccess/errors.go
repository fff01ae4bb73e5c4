package useraccess

import "errors"

var (
	ErrRoleCatalogUnreadable = errors.New("useraccess: role catalog unreadable")
	ErrRoleCatalogEmpty      = errors.New("useraccess: role catalog defines no roles")
	ErrRoleCatalogInvalid    = errors.New("useraccess: role catalog invalid")
	ErrUnknownRole           = errors.New("useraccess: unknown role")

	ErrUserNotFound = errors.New("useraccess: user not found")
	ErrMissingPool  = errors.New("useraccess: database pool is required")
	ErrMissingRedis = errors.New("useraccess: redis client is required")
)
