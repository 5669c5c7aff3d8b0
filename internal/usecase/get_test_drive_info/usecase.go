package get_test_drive_info

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	carRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/car"
	"github.com/m04kA/SMC-TestDriveService/pkg/ptr"
)

// UseCase loads everything the test drive form of a car needs
type UseCase struct {
	carRepo        CarRepository
	workingHours   WorkingHoursProvider
	bookingRepo    BookingRepository
	dealershipName string
	timeProvider   TimeProvider
	logger         Logger
}

func NewUseCase(
	carRepo CarRepository,
	workingHours WorkingHoursProvider,
	bookingRepo BookingRepository,
	dealershipName string,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:        carRepo,
		workingHours:   workingHours,
		bookingRepo:    bookingRepo,
		dealershipName: dealershipName,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute returns the car, the working hours and the car's active bookings from today on
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.TestDriveInfo, error) {
	uc.logger.Info("GetTestDriveInfo: car=%d", req.CarID)

	if req.CarID <= 0 {
		return nil, fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	// Car
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetTestDriveInfo: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetTestDriveInfo: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// Weekly schedule, possibly from the cache
	workingHours, err := uc.workingHours.GetWorkingHours(ctx)
	if err != nil {
		uc.logger.Error("GetTestDriveInfo: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	// Active bookings from today on. Booking dates are stored and parsed as UTC calendar dates
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		CarID:     ptr.Ptr(car.ID),
		StartDate: &today,
	})
	if err != nil {
		uc.logger.Error("GetTestDriveInfo: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	existing := make([]domain.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, b.ToExistingBooking())
	}

	return &domain.TestDriveInfo{
		Car: *car,
		Dealership: domain.Dealership{
			Name:         uc.dealershipName,
			WorkingHours: workingHours,
		},
		ExistingBookings: existing,
	}, nil
}
