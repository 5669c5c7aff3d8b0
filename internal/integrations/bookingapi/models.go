package bookingapi

import (
	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

type bookRequest struct {
	CarID       int64            `json:"carId"`
	BookingDate string           `json:"bookingDate"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	Notes       string           `json:"notes"`
}

type bookedTestDrive struct {
	ID          int64            `json:"id"`
	CarID       int64            `json:"carId"`
	BookingDate string           `json:"bookingDate"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes"`
}

type bookResponse struct {
	Success bool            `json:"success"`
	Data    bookedTestDrive `json:"data"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type car struct {
	ID     int64   `json:"id"`
	Make   string  `json:"make"`
	Model  string  `json:"model"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type workingHours struct {
	DayOfWeek string `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type existingBooking struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type testDriveInfo struct {
	Car        car `json:"car"`
	Dealership struct {
		Name         string         `json:"name"`
		WorkingHours []workingHours `json:"workingHours"`
	} `json:"dealership"`
	ExistingBookings []existingBooking `json:"existingBookings"`
}

func (i *testDriveInfo) toDomain() *domain.TestDriveInfo {
	out := &domain.TestDriveInfo{
		Car: domain.Car{
			ID:     i.Car.ID,
			Make:   i.Car.Make,
			Model:  i.Car.Model,
			Year:   i.Car.Year,
			Price:  i.Car.Price,
			Status: domain.CarStatus(i.Car.Status),
		},
		Dealership: domain.Dealership{
			Name:         i.Dealership.Name,
			WorkingHours: make([]domain.WorkingHoursEntry, 0, len(i.Dealership.WorkingHours)),
		},
		ExistingBookings: make([]domain.ExistingBooking, 0, len(i.ExistingBookings)),
	}

	for _, wh := range i.Dealership.WorkingHours {
		out.Dealership.WorkingHours = append(out.Dealership.WorkingHours, domain.WorkingHoursEntry{
			DayOfWeek: domain.DayOfWeek(wh.DayOfWeek),
			IsOpen:    wh.IsOpen,
			OpenTime:  wh.OpenTime,
			CloseTime: wh.CloseTime,
		})
	}

	for _, b := range i.ExistingBookings {
		out.ExistingBookings = append(out.ExistingBookings, domain.ExistingBooking{
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}

	return out
}
