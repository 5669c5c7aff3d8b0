package list_cars

import "errors"

var (
	// ErrInvalidInput search is too long
	ErrInvalidInput = errors.New("list_cars: invalid input data")

	// ErrInternal storage failure
	ErrInternal = errors.New("list_cars: internal error")
)
