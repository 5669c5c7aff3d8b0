package booking

import "errors"

var (
	// ErrBookingNotFound no booking with the given id
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery squirrel failed to build the statement
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery the statement failed
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow a result row could not be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
