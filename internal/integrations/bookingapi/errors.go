package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal request could not be made or the transport failed
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse unexpected status or body
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrCarNotFound the backend doesn't know the car
	ErrCarNotFound = errors.New("bookingapi client: car not found")

	// ErrRejected the backend refused the booking
	ErrRejected = errors.New("bookingapi client: booking rejected")
)

// Error failed call to the booking backend.
// Message is the backend's own text and is safe to show to the user.
type Error struct {
	StatusCode int
	Message    string
	err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d: %s", e.err, e.StatusCode, e.Message)
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// UserMessage backend text, empty for transport failures
func (e *Error) UserMessage() string {
	return e.Message
}
