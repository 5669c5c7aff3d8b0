package booking

import (
	"github.com/m04kA/SMC-TestDriveService/pkg/dbmetrics"
)

// DBExecutor database handle or transaction the repository runs queries on
type DBExecutor = dbmetrics.DBExecutor
