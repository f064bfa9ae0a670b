package portal

import "errors"

var (
	ErrValidation     = errors.New("email and phone are required")
	ErrNotFound       = errors.New("booking not found")
	ErrNoMatch        = errors.New("no customer matches the provided credentials")
	ErrEmptyUpdate    = errors.New("no valid fields to update")
	ErrNotCancellable = errors.New("only pending bookings can be cancelled")
)
