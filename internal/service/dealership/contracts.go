package dealership

import (
	"context"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

// WorkingHoursRepository persistent weekly schedule
type WorkingHoursRepository interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error)
	ReplaceWorkingHours(ctx context.Context, entries []domain.WorkingHoursEntry) error
}

// WorkingHoursReader read path, the repository or a cache in front of it
type WorkingHoursReader interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error)
}

// CacheInvalidator drops cached working hours after an update
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager runs fn in a transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
