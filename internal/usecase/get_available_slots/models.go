package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

// Request slots of one car on one date
type Request struct {
	CarID int64
	Date  time.Time // date only, time of day is ignored
}

// Response free slots of the day in ascending order
type Response struct {
	CarID int64
	Date  time.Time
	Slots []domain.Slot
}
