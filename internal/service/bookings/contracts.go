package bookings

import (
	"context"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
)

// BookingRepository test drive bookings storage
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TestDriveBooking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.TestDriveBooking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.TestDriveBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// UserServiceClient resolves user roles
type UserServiceClient interface {
	GetRole(ctx context.Context, userID int64) (userservice.Role, error)
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
