package get_test_drive_info

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	carRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/car"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

type mockCarRepo struct{ mock.Mock }

func (m *mockCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockWorkingHours struct{ mock.Mock }

func (m *mockWorkingHours) GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error) {
	args := m.Called(ctx)
	if e := args.Get(0); e != nil {
		return e.([]domain.WorkingHoursEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.TestDriveBooking, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.([]*domain.TestDriveBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

var (
	now   = time.Date(2026, 10, 16, 15, 4, 0, 0, time.UTC)
	today = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	hours = []domain.WorkingHoursEntry{
		{DayOfWeek: domain.Monday, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
	}
)

func newUseCase() (*UseCase, *mockCarRepo, *mockWorkingHours, *mockBookingRepo) {
	cars := &mockCarRepo{}
	wh := &mockWorkingHours{}
	bookings := &mockBookingRepo{}

	uc := NewUseCase(cars, wh, bookings, "Main Street Motors", logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc, cars, wh, bookings
}

func TestUseCase_Execute(t *testing.T) {
	uc, cars, wh, bookings := newUseCase()

	car := &domain.Car{ID: 42, Make: "Toyota", Model: "Camry", Status: domain.CarStatusAvailable}
	cars.On("GetByID", mock.Anything, int64(42)).Return(car, nil)
	wh.On("GetWorkingHours", mock.Anything).Return(hours, nil)
	bookings.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.CarID != nil && *f.CarID == 42 &&
			f.StartDate != nil && f.StartDate.Equal(today) &&
			f.EndDate == nil && !f.IncludeInactive
	})).Return([]*domain.TestDriveBooking{
		{
			BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			StartTime:   types.MustTimeString("10:00"),
			EndTime:     types.MustTimeString("11:00"),
		},
	}, nil)

	info, err := uc.Execute(t.Context(), &Request{CarID: 42})
	require.NoError(t, err)

	assert.Equal(t, *car, info.Car)
	assert.Equal(t, "Main Street Motors", info.Dealership.Name)
	assert.Equal(t, hours, info.Dealership.WorkingHours)
	assert.Equal(t, []domain.ExistingBooking{{Date: "2026-10-20", StartTime: "10:00", EndTime: "11:00"}}, info.ExistingBookings)

	cars.AssertExpectations(t)
	wh.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestUseCase_Execute_TodayIsCalendarDate(t *testing.T) {
	uc, cars, wh, bookings := newUseCase()
	// 22:00 on October 16 in UTC-7 is already October 17 in UTC
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 16, 22, 0, 0, 0, time.FixedZone("UTC-7", -7*60*60))}

	cars.On("GetByID", mock.Anything, int64(42)).Return(&domain.Car{ID: 42}, nil)
	wh.On("GetWorkingHours", mock.Anything).Return(hours, nil)
	bookings.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.StartDate != nil && *f.StartDate == today
	})).Return([]*domain.TestDriveBooking{}, nil)

	_, err := uc.Execute(t.Context(), &Request{CarID: 42})
	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("invalid car id", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(t.Context(), &Request{CarID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("car not found", func(t *testing.T) {
		uc, cars, _, _ := newUseCase()
		cars.On("GetByID", mock.Anything, int64(1)).Return(nil, carRepo.ErrCarNotFound)

		_, err := uc.Execute(t.Context(), &Request{CarID: 1})
		assert.ErrorIs(t, err, ErrCarNotFound)
	})

	t.Run("car lookup failure", func(t *testing.T) {
		uc, cars, _, _ := newUseCase()
		cars.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

		_, err := uc.Execute(t.Context(), &Request{CarID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("working hours failure", func(t *testing.T) {
		uc, cars, wh, _ := newUseCase()
		cars.On("GetByID", mock.Anything, int64(1)).Return(&domain.Car{ID: 1}, nil)
		wh.On("GetWorkingHours", mock.Anything).Return(nil, errors.New("db down"))

		_, err := uc.Execute(t.Context(), &Request{CarID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings failure", func(t *testing.T) {
		uc, cars, wh, bookings := newUseCase()
		cars.On("GetByID", mock.Anything, int64(1)).Return(&domain.Car{ID: 1}, nil)
		wh.On("GetWorkingHours", mock.Anything).Return(hours, nil)
		bookings.On("GetWithFilter", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := uc.Execute(t.Context(), &Request{CarID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
