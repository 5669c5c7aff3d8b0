package testdrive

import "time"

// State submission state of a form
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Selection user input at submit time
type Selection struct {
	Date   time.Time // calendar date, time of day is ignored
	SlotID string    // id of one of the slots computed for Date
	Notes  *string
}

// Confirmation view model of a successful booking
type Confirmation struct {
	BookingID int64
	Date      string // "Tuesday, October 20, 2026"
	TimeSlot  string // "10:00 AM - 11:00 AM"
	Notes     string
}
