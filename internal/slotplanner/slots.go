// Package slotplanner computes bookable one-hour test drive slots from the
// dealership's weekly working hours and the bookings already made.
package slotplanner

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// ErrInvalidWorkingHours is returned when an open day has a malformed open or close time
var ErrInvalidWorkingHours = errors.New("slotplanner: invalid working hours")

// ComputeSlots returns the free one-hour slots of date in ascending order.
//
// Slots start at every full hour in [openHour, closeHour) of the weekday's entry;
// minutes of the open and close times are ignored. A slot is dropped when an
// existing booking on the same date starts at the slot's start or ends at the
// slot's end. A closed or missing weekday yields an empty result.
func ComputeSlots(
	date time.Time,
	workingHours []domain.WorkingHoursEntry,
	existingBookings []domain.ExistingBooking,
) ([]domain.Slot, error) {
	entry, ok := FindWorkingHours(date, workingHours)
	if !ok || !entry.IsOpen {
		return []domain.Slot{}, nil
	}

	openHour, err := parseHour(entry.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s open time %q: %v", ErrInvalidWorkingHours, entry.DayOfWeek, entry.OpenTime, err)
	}
	closeHour, err := parseHour(entry.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s close time %q: %v", ErrInvalidWorkingHours, entry.DayOfWeek, entry.CloseTime, err)
	}

	if closeHour <= openHour {
		return []domain.Slot{}, nil
	}

	dateStr := date.Format(domain.DateFormat)
	slots := make([]domain.Slot, 0, closeHour-openHour)

	for hour := openHour; hour < closeHour; hour++ {
		start, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}
		end, err := types.NewTimeStringFromHour(hour + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}

		if isBooked(dateStr, start, end, existingBookings) {
			continue
		}

		slots = append(slots, NewSlot(start, end))
	}

	return slots, nil
}

// IsDayDisabled reports whether day can't be picked for a test drive:
// it lies before now, or the dealership is not open on its weekday.
func IsDayDisabled(day, now time.Time, workingHours []domain.WorkingHoursEntry) bool {
	if day.Before(now) {
		return true
	}

	entry, ok := FindWorkingHours(day, workingHours)
	return !ok || !entry.IsOpen
}

// FindWorkingHours returns the first entry matching the weekday of date
func FindWorkingHours(date time.Time, workingHours []domain.WorkingHoursEntry) (domain.WorkingHoursEntry, bool) {
	day := domain.DayOfWeekOf(date)
	for _, entry := range workingHours {
		if entry.DayOfWeek.Matches(day) {
			return entry, true
		}
	}
	return domain.WorkingHoursEntry{}, false
}

// NewSlot builds a slot with its id and label derived from the interval
func NewSlot(start, end types.TimeString) domain.Slot {
	return domain.Slot{
		ID:        start.String() + "-" + end.String(),
		Label:     start.String() + " - " + end.String(),
		StartTime: start,
		EndTime:   end,
	}
}

// FindSlot looks a slot up by id
func FindSlot(slots []domain.Slot, id string) (domain.Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Slot{}, false
}

// ContainsInterval reports whether slots has a slot with exactly these bounds
func ContainsInterval(slots []domain.Slot, start, end types.TimeString) bool {
	for _, s := range slots {
		if s.StartTime == start && s.EndTime == end {
			return true
		}
	}
	return false
}

// isBooked matches by start OR end time, not by interval overlap
func isBooked(date string, start, end types.TimeString, bookings []domain.ExistingBooking) bool {
	startStr, endStr := start.String(), end.String()
	for _, b := range bookings {
		if b.Date == date && (b.StartTime == startStr || b.EndTime == endStr) {
			return true
		}
	}
	return false
}

func parseHour(s string) (int, error) {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}
