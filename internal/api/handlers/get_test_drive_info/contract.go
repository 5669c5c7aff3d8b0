package get_test_drive_info

import (
	"context"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	getTestDriveInfo "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_test_drive_info"
)

type GetTestDriveInfoUseCase interface {
	Execute(ctx context.Context, req *getTestDriveInfo.Request) (*domain.TestDriveInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
