package authz

import "errors"

var (
	// ErrEmptyPolicyName is returned when registering a policy without a name.
	ErrEmptyPolicyName = errors.New("authz: empty policy name")

	// ErrEmptyPermission is returned when registering a policy without a permission.
	ErrEmptyPermission = errors.New("authz: empty required permission")

	// ErrDuplicatePolicy is returned when a policy name is registered twice.
	ErrDuplicatePolicy = errors.New("authz: policy already registered")

	// ErrUnknownPolicy is returned when an endpoint references an unregistered policy.
	ErrUnknownPolicy = errors.New("authz: unknown policy")
)
