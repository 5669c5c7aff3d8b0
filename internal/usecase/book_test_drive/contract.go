package book_test_drive

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

// BookingRepository booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.TestDriveBooking) (*domain.TestDriveBooking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.TestDriveBooking, error)
}

// CarRepository car lookup
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// WorkingHoursProvider weekly schedule of the dealership (repository or cache)
type WorkingHoursProvider interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error)
}

// TransactionManager runs fn in a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics business counters
type Metrics interface {
	IncTestDriveBooked()
	IncTestDriveBookingFailed(reason string)
}

// TimeProvider source of the current time
type TimeProvider interface {
	Now() time.Time
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider wall clock
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
