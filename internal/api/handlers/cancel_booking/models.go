package cancel_booking

import "github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"

// CancelBookingRequest optional body of the cancel request
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
