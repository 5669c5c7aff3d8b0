package get_test_drive_info

import "errors"

var (
	// ErrCarNotFound no car with the requested id
	ErrCarNotFound = errors.New("get_test_drive_info: car not found")

	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("get_test_drive_info: invalid input data")

	// ErrInternal storage failure
	ErrInternal = errors.New("get_test_drive_info: internal error")
)
