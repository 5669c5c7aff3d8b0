package list_cars

import (
	"context"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

type CarRepository interface {
	List(ctx context.Context, search *string) ([]*domain.Car, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
