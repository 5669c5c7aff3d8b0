package get_test_drive_info

import "github.com/m04kA/SMC-TestDriveService/internal/domain"

type CarResponse struct {
	ID     int64   `json:"id"`
	Make   string  `json:"make"`
	Model  string  `json:"model"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type WorkingHoursResponse struct {
	DayOfWeek string `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type DealershipResponse struct {
	Name         string                 `json:"name"`
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
}

type ExistingBookingResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TestDriveInfoResponse everything the booking form needs for one car
type TestDriveInfoResponse struct {
	Car              CarResponse               `json:"car"`
	Dealership       DealershipResponse        `json:"dealership"`
	ExistingBookings []ExistingBookingResponse `json:"existingBookings"`
}

func FromDomain(info *domain.TestDriveInfo) *TestDriveInfoResponse {
	resp := &TestDriveInfoResponse{
		Car: CarResponse{
			ID:     info.Car.ID,
			Make:   info.Car.Make,
			Model:  info.Car.Model,
			Year:   info.Car.Year,
			Price:  info.Car.Price,
			Status: string(info.Car.Status),
		},
		Dealership: DealershipResponse{
			Name:         info.Dealership.Name,
			WorkingHours: make([]WorkingHoursResponse, 0, len(info.Dealership.WorkingHours)),
		},
		ExistingBookings: make([]ExistingBookingResponse, 0, len(info.ExistingBookings)),
	}

	for _, wh := range info.Dealership.WorkingHours {
		resp.Dealership.WorkingHours = append(resp.Dealership.WorkingHours, WorkingHoursResponse{
			DayOfWeek: string(wh.DayOfWeek),
			IsOpen:    wh.IsOpen,
			OpenTime:  wh.OpenTime,
			CloseTime: wh.CloseTime,
		})
	}

	for _, b := range info.ExistingBookings {
		resp.ExistingBookings = append(resp.ExistingBookings, ExistingBookingResponse{
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}

	return resp
}
