package testdrive

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/slotplanner"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// validateSelection checks the selection against the date and slots the form holds.
// Returns the chosen slot and the message for the user on failure.
func validateSelection(sel Selection, selectedDate *time.Time, slots []domain.Slot) (domain.Slot, string, error) {
	if sel.Date.IsZero() {
		return domain.Slot{}, MessageNoDate, ErrNoDateSelected
	}

	if sel.SlotID == "" {
		return domain.Slot{}, MessageNoSlot, ErrNoSlotSelected
	}

	if selectedDate == nil || !isSameDay(sel.Date, *selectedDate) {
		return domain.Slot{}, MessageSlotNotFound,
			fmt.Errorf("%w: slots were computed for another date", ErrSelectionStale)
	}

	slot, ok := slotplanner.FindSlot(slots, sel.SlotID)
	if !ok {
		return domain.Slot{}, MessageSlotNotFound,
			fmt.Errorf("%w: slot %q", ErrSelectionStale, sel.SlotID)
	}

	return slot, "", nil
}

// formatTimeRange renders "10:00 AM - 11:00 AM"
func formatTimeRange(start, end types.TimeString) string {
	return start.Format12h() + " - " + end.Format12h()
}

// isSameDay compares calendar dates
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
