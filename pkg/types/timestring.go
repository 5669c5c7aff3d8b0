package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesInDay is the number of minutes between 00:00 and 24:00.
const MinutesInDay = 24 * 60

var (
	// ErrInvalidTimeFormat is returned for strings that are not HH:MM (or HH:MM:SS).
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when arithmetic leaves the 00:00..24:00 range.
	ErrTimeOutOfRange = errors.New("time is out of range")
)

// TimeString is a time of day with minute precision, serialized as "HH:MM".
// 24:00 is allowed and denotes the end of the day.
// The zero value is "not set".
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString takes the time of day from t.
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromHour builds "HH:00".
func NewTimeStringFromHour(hour int) (TimeString, error) {
	if hour < 0 || hour > 24 {
		return TimeString{}, fmt.Errorf("%w: hour %d", ErrTimeOutOfRange, hour)
	}
	return TimeString{minutes: hour * 60, valid: true}, nil
}

// NewTimeStringFromString parses "HH:MM". A trailing ":SS" (postgres TIME) is accepted
// when the seconds are zero.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, ErrInvalidTimeFormat
	}

	for _, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return TimeString{}, ErrInvalidTimeFormat
		}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, ErrInvalidTimeFormat
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec != 0 {
			return TimeString{}, ErrInvalidTimeFormat
		}
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return TimeString{}, ErrInvalidTimeFormat
	}
	if hour == 24 && minute != 0 {
		return TimeString{}, ErrInvalidTimeFormat
	}

	return TimeString{minutes: hour*60 + minute, valid: true}, nil
}

// MustTimeString is NewTimeStringFromString that panics on error.
func MustTimeString(s string) TimeString {
	t, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: %q: %v", s, err))
	}
	return t
}

func (t TimeString) Hour() int {
	return t.minutes / 60
}

func (t TimeString) Minute() int {
	return t.minutes % 60
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() int {
	return t.minutes
}

func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate checks that the value is set and within 00:00..24:00.
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidTimeFormat
	}
	if t.minutes < 0 || t.minutes > MinutesInDay {
		return ErrTimeOutOfRange
	}
	return nil
}

func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12h renders the time as "3:04 PM".
func (t TimeString) Format12h() string {
	if !t.valid {
		return ""
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(t.minutes) * time.Minute).
		Format("3:04 PM")
}

// AddMinutes returns t shifted by m minutes. The result must stay within 00:00..24:00.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	next := t.minutes + m
	if next < 0 || next > MinutesInDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d min", ErrTimeOutOfRange, t, m)
	}
	return TimeString{minutes: next, valid: true}, nil
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

func (t TimeString) Equal(other TimeString) bool {
	return t == other
}

// On places the time of day on the calendar date of d.
func (t TimeString) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).
		Add(time.Duration(t.minutes) * time.Minute)
}

func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner for TIME columns.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}
