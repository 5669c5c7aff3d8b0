package domain

import (
	"time"

	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// BookingStatus represents the status of a test drive booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusNoShow    BookingStatus = "NO_SHOW"
)

// statusTransitions allowed admin status changes
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// TestDriveBooking represents a test drive reservation
type TestDriveBooking struct {
	ID          int64
	CarID       int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Notes       *string

	// Denormalized data for history and admin search
	CarMake  string
	CarModel string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *TestDriveBooking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *TestDriveBooking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo returns true if an admin may move the booking to status
func (b *TestDriveBooking) CanTransitionTo(status BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == status {
			return true
		}
	}
	return false
}

// ToExistingBooking returns the slot-occupancy view of the booking
func (b *TestDriveBooking) ToExistingBooking() ExistingBooking {
	return ExistingBooking{
		Date:      b.BookingDate.Format(DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
	}
}

// IsValidBookingStatus checks the status against the known set
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// BookingsFilter filter for booking queries
type BookingsFilter struct {
	CarID           *int64         // only bookings of this car
	UserID          *int64         // only bookings of this user
	StartDate       *time.Time     // period start (inclusive)
	EndDate         *time.Time     // period end (inclusive)
	Status          *BookingStatus // exact status
	Search          *string        // matches car make or model
	IncludeInactive bool           // include cancelled and no-show bookings
}

// IsSingleDate returns true if the filter covers exactly one day
func (f BookingsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
