package domain

import (
	"strings"
	"time"
)

// DayOfWeek weekday as stored by the dealership (upper case)
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// AllDays weekdays in calendar order starting from Monday
var AllDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOfWeekOf returns the weekday of the date
func DayOfWeekOf(date time.Time) DayOfWeek {
	return DayOfWeek(strings.ToUpper(date.Weekday().String()))
}

// ParseDayOfWeek parses a weekday name case-insensitively
func ParseDayOfWeek(s string) (DayOfWeek, bool) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllDays {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Matches compares weekday names case-insensitively
func (d DayOfWeek) Matches(other DayOfWeek) bool {
	return strings.EqualFold(string(d), string(other))
}

// WorkingHoursEntry dealership hours for one weekday.
// OpenTime and CloseTime are "HH:MM" and are only meaningful when IsOpen is true.
type WorkingHoursEntry struct {
	DayOfWeek DayOfWeek
	IsOpen    bool
	OpenTime  string
	CloseTime string
}

// Dealership holds the weekly schedule used for test drives
type Dealership struct {
	Name         string
	WorkingHours []WorkingHoursEntry
}
