package book_test_drive

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	carRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/car"
	"github.com/m04kA/SMC-TestDriveService/internal/slotplanner"
	"github.com/m04kA/SMC-TestDriveService/pkg/ptr"
)

// UseCase server side of the test drive booking form
type UseCase struct {
	bookingRepo  BookingRepository
	carRepo      CarRepository
	workingHours WorkingHoursProvider
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	workingHours WorkingHoursProvider,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		workingHours: workingHours,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute books one slot for the user.
//
// The free slots of the day are recomputed from the bookings read inside a
// serializable transaction (rows locked with FOR UPDATE), and the requested
// interval must be one of them.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if err != nil {
		uc.metrics.IncTestDriveBookingFailed(failureReason(err))
		return nil, err
	}

	uc.metrics.IncTestDriveBooked()
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTestDrive: user=%d, car=%d, date=%s, time=%s-%s",
		req.UserID, req.CarID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTestDrive: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Date and time
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("BookTestDrive: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("BookTestDrive: slot %s on %s has already started", req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Car
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("BookTestDrive: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("BookTestDrive: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !car.CanBeTestDriven() {
		uc.logger.Warn("BookTestDrive: car id=%d has status %s", car.ID, car.Status)
		return nil, ErrCarNotAvailable
	}

	// 4. Working hours
	workingHours, err := uc.workingHours.GetWorkingHours(ctx)
	if err != nil {
		uc.logger.Error("BookTestDrive: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	if entry, ok := slotplanner.FindWorkingHours(req.Date, workingHours); !ok || !entry.IsOpen {
		uc.logger.Warn("BookTestDrive: dealership is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrDealershipClosed
	}

	var result *domain.TestDriveBooking

	// 5. Slot check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			CarID:     ptr.Ptr(car.ID),
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("BookTestDrive: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		existing := make([]domain.ExistingBooking, 0, len(bookings))
		for _, b := range bookings {
			existing = append(existing, b.ToExistingBooking())
		}

		slots, err := slotplanner.ComputeSlots(req.Date, workingHours, existing)
		if err != nil {
			uc.logger.Error("BookTestDrive: failed to compute slots: %v", err)
			return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}

		if !slotplanner.ContainsInterval(slots, req.StartTime, req.EndTime) {
			uc.logger.Warn("BookTestDrive: slot %s-%s on %s is not available (%d free)",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat), len(slots))
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.TestDriveBooking{
			CarID:       car.ID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
			CarMake:     car.Make,
			CarModel:    car.Model,
		})
		if err != nil {
			uc.logger.Error("BookTestDrive: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookTestDrive: created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		CarID:       result.CarID,
		UserID:      result.UserID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CarMake:     result.CarMake,
		CarModel:    result.CarModel,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// failureReason label for the failed bookings counter
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidTimeSlot):
		return "invalid_input"
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrTooLateToBook):
		return "invalid_date"
	case errors.Is(err, ErrCarNotFound), errors.Is(err, ErrCarNotAvailable):
		return "car_unavailable"
	case errors.Is(err, ErrDealershipClosed):
		return "closed"
	case errors.Is(err, ErrSlotNotAvailable):
		return "slot_taken"
	default:
		return "internal"
	}
}
