package update_working_hours

import "github.com/m04kA/SMC-TestDriveService/internal/service/dealership/models"

// UpdateWorkingHoursRequest body of PUT working-hours, all seven days
type UpdateWorkingHoursRequest struct {
	WorkingHours []models.WorkingHours `json:"workingHours"`
}

func (r *UpdateWorkingHoursRequest) ToServiceRequest(userID int64) *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		UserID:       userID,
		WorkingHours: r.WorkingHours,
	}
}
