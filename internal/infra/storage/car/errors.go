package car

import "errors"

var (
	// ErrCarNotFound no car with the given id
	ErrCarNotFound = errors.New("car.repository: car not found")

	// ErrBuildQuery squirrel failed to build the statement
	ErrBuildQuery = errors.New("car.repository: failed to build query")

	// ErrExecQuery the statement failed
	ErrExecQuery = errors.New("car.repository: failed to execute query")

	// ErrScanRow a result row could not be scanned
	ErrScanRow = errors.New("car.repository: failed to scan row")
)
