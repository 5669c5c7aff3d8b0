package update_booking_status

// UpdateStatusRequest body of the admin status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
