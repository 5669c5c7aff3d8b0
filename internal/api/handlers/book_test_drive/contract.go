package book_test_drive

import (
	"context"

	bookTestDrive "github.com/m04kA/SMC-TestDriveService/internal/usecase/book_test_drive"
)

type BookTestDriveUseCase interface {
	Execute(ctx context.Context, req *bookTestDrive.Request) (*bookTestDrive.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
