package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	carRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/car"
	"github.com/m04kA/SMC-TestDriveService/internal/slotplanner"
	"github.com/m04kA/SMC-TestDriveService/pkg/ptr"
)

// UseCase free test drive slots of a car on a date
type UseCase struct {
	carRepo      CarRepository
	workingHours WorkingHoursProvider
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	carRepo CarRepository,
	workingHours WorkingHoursProvider,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:      carRepo,
		workingHours: workingHours,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes the slots the way the booking form does, from the stored bookings
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: car=%d, date=%s", req.CarID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Car must exist
	if _, err := uc.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetAvailableSlots: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	workingHours, err := uc.workingHours.GetWorkingHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// Bookings of the car on that date
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		CarID:     ptr.Ptr(req.CarID),
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	existing := make([]domain.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, b.ToExistingBooking())
	}

	// Same computation as the booking form
	slots, err := slotplanner.ComputeSlots(req.Date, workingHours, existing)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for car=%d, date=%s",
		len(slots), req.CarID, req.Date.Format(domain.DateFormat))

	return &Response{
		CarID: req.CarID,
		Date:  req.Date,
		Slots: slots,
	}, nil
}
