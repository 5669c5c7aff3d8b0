package list_cars

import (
	"context"

	listCars "github.com/m04kA/SMC-TestDriveService/internal/usecase/list_cars"
)

type ListCarsUseCase interface {
	Execute(ctx context.Context, req *listCars.Request) (*listCars.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
