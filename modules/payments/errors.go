package payments

import "errors"

var (
	ErrPaymentNotFound   = errors.New("payments: payment not found")
	ErrMissingPool       = errors.New("payments: database pool is required")
	ErrMissingEncryptKey = errors.New("payments: encryption key is required")
)
