package book_test_drive

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	bookTestDrive "github.com/m04kA/SMC-TestDriveService/internal/usecase/book_test_drive"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// BookTestDriveRequest body of POST /test-drives
type BookTestDriveRequest struct {
	CarID       int64            `json:"carId"`
	BookingDate string           `json:"bookingDate"` // "2026-10-20"
	StartTime   types.TimeString `json:"startTime"`   // "10:00"
	EndTime     types.TimeString `json:"endTime"`     // "11:00"
	Notes       *string          `json:"notes,omitempty"`
}

// ToUseCaseRequest parses the date; an empty notes string is treated as absent
func (r *BookTestDriveRequest) ToUseCaseRequest(userID int64) (*bookTestDrive.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("parse bookingDate: %w", err)
	}

	notes := r.Notes
	if notes != nil && *notes == "" {
		notes = nil
	}

	return &bookTestDrive.Request{
		UserID:    userID,
		CarID:     r.CarID,
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     notes,
	}, nil
}

// BookingResponse the created booking
type BookingResponse struct {
	ID          int64     `json:"id"`
	CarID       int64     `json:"carId"`
	UserID      int64     `json:"userId"`
	BookingDate string    `json:"bookingDate"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CarMake     string    `json:"carMake"`
	CarModel    string    `json:"carModel"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromUseCaseResponse(resp *bookTestDrive.Response) *BookingResponse {
	out := &BookingResponse{
		ID:          resp.ID,
		CarID:       resp.CarID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CarMake:     resp.CarMake,
		CarModel:    resp.CarModel,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
	if resp.Notes != nil {
		out.Notes = *resp.Notes
	}
	return out
}
