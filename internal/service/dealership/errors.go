package dealership

import "errors"

var (
	// ErrInvalidInput malformed working hours
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal repository failure
	ErrInternal = errors.New("service: internal error")
)
