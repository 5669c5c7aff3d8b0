package testdrive

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

// Dispatcher sends a booking request to the booking collaborator
type Dispatcher interface {
	BookTestDrive(ctx context.Context, req domain.BookingRequest) (*domain.BookedTestDrive, error)
}

// Notifier shows error messages to the user
type Notifier interface {
	Error(message string)
}

// Navigator moves the user to another view
type Navigator interface {
	ToCar(carID int64)
}

// UserMessager is implemented by dispatch errors that carry a message meant for the user
type UserMessager interface {
	UserMessage() string
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
