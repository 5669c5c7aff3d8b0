package book_test_drive

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// validateRequest checks ids, required fields and the slot shape
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return validateTimeSlot(req.StartTime, req.EndTime)
}

// validateTimeSlot checks the interval is one full hour starting on the hour
func validateTimeSlot(start, end types.TimeString) error {
	if start.Minute() != 0 {
		return fmt.Errorf("%w: slot must start on the hour", ErrInvalidTimeSlot)
	}

	if end.Minutes()-start.Minutes() != domain.SlotDurationMinutes {
		return fmt.Errorf("%w: slot must last %d minutes", ErrInvalidTimeSlot, domain.SlotDurationMinutes)
	}

	return nil
}

// validateBookingTime rejects slots of today that have already started
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay compares calendar dates
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the calendar date of date is before the calendar date of now.
// Dates arrive as UTC midnights while now is server local time, so instants are not compared.
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(today)
}
