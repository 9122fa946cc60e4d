package domain

import "errors"

// Business error taxonomy. Services return these sentinels and the API layer
// maps them to HTTP statuses.
var (
	ErrDuplicateEmail           = errors.New("email already registered")
	ErrValidation               = errors.New("invalid input")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserNotFound             = errors.New("user not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrOrderNotFound            = errors.New("order not found")
	ErrNotAuthorized            = errors.New("not authorized")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrMissingTransactionID     = errors.New("transaction id is required")
)
