package get_available_slots

import "errors"

var (
	// ErrCarNotFound no car with the requested id
	ErrCarNotFound = errors.New("get_available_slots: car not found")

	// ErrInvalidDate date is in the past
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal storage failure or broken working hours
	ErrInternal = errors.New("get_available_slots: internal error")
)
