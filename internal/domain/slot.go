package domain

import "github.com/m04kA/SMC-TestDriveService/pkg/types"

// ExistingBooking already reserved interval on a date, as seen by the slot planner
type ExistingBooking struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// Slot one-hour interval offered for booking
type Slot struct {
	ID        string // "09:00-10:00"
	Label     string // "09:00 - 10:00"
	StartTime types.TimeString
	EndTime   types.TimeString
}

// TestDriveInfo everything needed to render a test drive form for a car
type TestDriveInfo struct {
	Car              Car
	Dealership       Dealership
	ExistingBookings []ExistingBooking
}

// BookingRequest payload sent to the booking collaborator
type BookingRequest struct {
	CarID       int64
	BookingDate string // YYYY-MM-DD
	StartTime   types.TimeString
	EndTime     types.TimeString
	Notes       string
}

// BookedTestDrive booking data echoed back after a successful request
type BookedTestDrive struct {
	ID          int64
	CarID       int64
	BookingDate string // YYYY-MM-DD
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Notes       string
}
