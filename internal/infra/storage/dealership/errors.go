package dealership

import "errors"

var (
	// ErrBuildQuery squirrel failed to build the statement
	ErrBuildQuery = errors.New("dealership.repository: failed to build query")

	// ErrExecQuery the statement failed
	ErrExecQuery = errors.New("dealership.repository: failed to execute query")

	// ErrScanRow a result row could not be scanned
	ErrScanRow = errors.New("dealership.repository: failed to scan row")
)
