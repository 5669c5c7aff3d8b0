package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// ConfirmationDateFormat e.g. "Tuesday, October 20, 2026"
	ConfirmationDateFormat = "Monday, January 2, 2006"
)

// Slot generation constants
const (
	SlotDurationMinutes = 60
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSearchLength             = 100
	DaysInWeek                  = 7
)

// InactiveStatuses bookings that no longer occupy a slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses bookings that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
