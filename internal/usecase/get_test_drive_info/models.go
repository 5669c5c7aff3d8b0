package get_test_drive_info

// Request data needed to render the booking form of a car
type Request struct {
	CarID int64
}
