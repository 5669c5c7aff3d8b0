package bookings

import "errors"

var (
	// ErrBookingNotFound booking doesn't exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied user is neither the owner nor an admin
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel booking is already cancelled, completed or no-show
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidTransition status change not allowed from the current status
	ErrInvalidTransition = errors.New("booking status transition not allowed")

	// ErrInvalidInput malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal repository or transport failure
	ErrInternal = errors.New("service: internal error")
)
