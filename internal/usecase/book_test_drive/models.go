package book_test_drive

import (
	"time"

	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// Request test drive booking of one slot
type Request struct {
	UserID    int64
	CarID     int64
	Date      time.Time // date only, time of day is ignored
	StartTime types.TimeString
	EndTime   types.TimeString
	Notes     *string
}

// Response the created booking
type Response struct {
	ID          int64
	CarID       int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Notes       *string

	CarMake  string
	CarModel string

	CreatedAt time.Time
	UpdatedAt time.Time
}
