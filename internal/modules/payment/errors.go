package payment

import "errors"

var (
	ErrNotConfigured   = errors.New("payment processing not configured")
	ErrValidation      = errors.New("booking ID and amount are required")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotSucceeded    = errors.New("payment not successful")
)
