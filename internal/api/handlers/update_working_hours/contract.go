package update_working_hours

import (
	"context"

	"github.com/m04kA/SMC-TestDriveService/internal/service/dealership/models"
)

type DealershipService interface {
	UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
