package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

func TestDayOfWeekOf(t *testing.T) {
	// 2026-10-19 is a Monday
	assert.Equal(t, Monday, DayOfWeekOf(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, DayOfWeekOf(time.Date(2026, 10, 25, 23, 0, 0, 0, time.UTC)))
}

func TestParseDayOfWeek(t *testing.T) {
	d, ok := ParseDayOfWeek("friday")
	assert.True(t, ok)
	assert.Equal(t, Friday, d)

	_, ok = ParseDayOfWeek("FRI")
	assert.False(t, ok)

	assert.True(t, DayOfWeek("Monday").Matches(Monday))
}

func TestTestDriveBooking_Status(t *testing.T) {
	b := &TestDriveBooking{Status: StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanTransitionTo(StatusConfirmed))
	assert.False(t, b.CanTransitionTo(StatusCompleted))

	b.Status = StatusConfirmed
	assert.True(t, b.CanTransitionTo(StatusNoShow))

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanTransitionTo(StatusConfirmed))

	assert.True(t, IsValidBookingStatus(StatusNoShow))
	assert.False(t, IsValidBookingStatus("DONE"))
}

func TestTestDriveBooking_ToExistingBooking(t *testing.T) {
	b := &TestDriveBooking{
		BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.MustTimeString("10:00"),
		EndTime:     types.MustTimeString("11:00"),
	}

	assert.Equal(t, ExistingBooking{Date: "2026-10-20", StartTime: "10:00", EndTime: "11:00"}, b.ToExistingBooking())
}

func TestBookingsFilter_IsSingleDate(t *testing.T) {
	d := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	next := d.AddDate(0, 0, 1)

	assert.True(t, BookingsFilter{StartDate: &d, EndDate: &d}.IsSingleDate())
	assert.False(t, BookingsFilter{StartDate: &d, EndDate: &next}.IsSingleDate())
	assert.False(t, BookingsFilter{StartDate: &d}.IsSingleDate())
}

func TestCar(t *testing.T) {
	c := &Car{Make: "Toyota", Model: "Camry", Status: CarStatusAvailable}
	assert.True(t, c.CanBeTestDriven())
	assert.Equal(t, "Toyota Camry", c.Title())

	c.Status = CarStatusSold
	assert.False(t, c.CanBeTestDriven())
}
