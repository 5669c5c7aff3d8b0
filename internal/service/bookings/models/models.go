package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

var (
	// ErrInvalidStatus unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest cancellation by the owner or an admin
type CancelBookingRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest admin status change
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest bookings of the current user
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAllBookingsRequest admin listing
type GetAllBookingsRequest struct {
	CarID           *int64     `json:"carId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Search          *string    `json:"search,omitempty"` // car make or model
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a repository filter.
// An explicit status always wins over IncludeInactive.
func (r *GetAllBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CarID:           r.CarID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Search:          r.Search,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		filter.IncludeInactive = true
	}

	return filter, nil
}

// Response models

// BookingResponse test drive booking DTO
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CarID       int64   `json:"carId"`
	BookingDate string  `json:"bookingDate"` // "2026-10-20"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:00"
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CarMake  string `json:"carMake"`
	CarModel string `json:"carModel"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking to the DTO
func FromDomainBooking(b *domain.TestDriveBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		CarID:              b.CarID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CarMake:            b.CarMake,
		CarModel:           b.CarModel,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList converts a list, nil becomes an empty list
func FromDomainBookingList(bookings []*domain.TestDriveBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus parses and validates a status
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
