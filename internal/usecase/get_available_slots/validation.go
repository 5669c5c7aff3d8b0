package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest checks ids and required fields
func validateRequest(req *Request) error {
	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast reports whether the calendar date of date is before the calendar date of now.
// Dates arrive as UTC midnights while now is server local time, so instants are not compared.
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(today)
}
