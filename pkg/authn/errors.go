package authn

import "errors"

var (
	ErrInvalidToken            = errors.New("authn: invalid token")
	ErrExpiredToken            = errors.New("authn: token is expired")
	ErrInvalidSignature        = errors.New("authn: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("authn: unexpected signing method")
	ErrInvalidIssuer           = errors.New("authn: token issuer mismatch")
	ErrInvalidAudience         = errors.New("authn: token audience mismatch")
	ErrMissingSigningKey       = errors.New("authn: missing signing key")
	ErrMissingSubject          = errors.New("authn: token has no subject")
	ErrTokenRevoked            = errors.New("authn: token has been revoked")
)
