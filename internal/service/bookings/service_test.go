package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
	"github.com/m04kA/SMC-TestDriveService/pkg/ptr"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.TestDriveBooking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.TestDriveBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.TestDriveBooking, error) {
	args := m.Called(ctx, userID, status)
	if b := args.Get(0); b != nil {
		return b.([]*domain.TestDriveBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.TestDriveBooking, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.([]*domain.TestDriveBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	return m.Called(ctx, id, reason).Error(0)
}

type stubUsers map[int64]userservice.Role

func (s stubUsers) GetRole(_ context.Context, userID int64) (userservice.Role, error) {
	if userID == 500 {
		return "", userservice.ErrServiceDegraded
	}
	role, ok := s[userID]
	if !ok {
		return "", userservice.ErrUserNotFound
	}
	return role, nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	ownerID = int64(7)
	adminID = int64(1)
	otherID = int64(8)
)

func newService(repo *mockBookingRepo) *Service {
	users := stubUsers{ownerID: userservice.RoleUser, otherID: userservice.RoleUser, adminID: userservice.RoleAdmin}
	return NewService(repo, users, passthroughTx{}, logger.Nop())
}

func pendingBooking() *domain.TestDriveBooking {
	return &domain.TestDriveBooking{
		ID:          10,
		CarID:       42,
		UserID:      ownerID,
		BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.MustTimeString("10:00"),
		EndTime:     types.MustTimeString("11:00"),
		Status:      domain.StatusPending,
		CarMake:     "Toyota",
		CarModel:    "Camry",
	}
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)

	confirmed := domain.StatusConfirmed
	repo.On("GetByUserID", mock.Anything, ownerID, &confirmed).
		Return([]*domain.TestDriveBooking{pendingBooking()}, nil)

	resp, err := svc.GetUserBookings(t.Context(), &models.GetUserBookingsRequest{UserID: ownerID, Status: ptr.Ptr("CONFIRMED")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2026-10-20", resp.Bookings[0].BookingDate)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "11:00", resp.Bookings[0].EndTime)
	assert.Equal(t, "Toyota", resp.Bookings[0].CarMake)

	_, err = svc.GetUserBookings(t.Context(), &models.GetUserBookingsRequest{UserID: ownerID, Status: ptr.Ptr("DONE")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetUserBookings_Empty(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)

	repo.On("GetByUserID", mock.Anything, ownerID, (*domain.BookingStatus)(nil)).Return(nil, nil)

	resp, err := svc.GetUserBookings(t.Context(), &models.GetUserBookingsRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestService_GetAllBookings(t *testing.T) {
	t.Run("status and search", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)

		repo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
			return *f.Status == domain.StatusCancelled && f.IncludeInactive && *f.Search == "camry"
		})).Return([]*domain.TestDriveBooking{}, nil)

		_, err := svc.GetAllBookings(t.Context(), &models.GetAllBookingsRequest{
			Status: ptr.Ptr("CANCELLED"),
			Search: ptr.Ptr("  camry "),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("search too long", func(t *testing.T) {
		svc := newService(&mockBookingRepo{})
		_, err := svc.GetAllBookings(t.Context(), &models.GetAllBookingsRequest{
			Search: ptr.Ptr(strings.Repeat("x", domain.MaxSearchLength+1)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reversed period", func(t *testing.T) {
		svc := newService(&mockBookingRepo{})
		start := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)
		_, err := svc.GetAllBookings(t.Context(), &models.GetAllBookingsRequest{StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)
		repo.On("GetWithFilter", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.GetAllBookings(t.Context(), &models.GetAllBookingsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Cancel(t *testing.T) {
	reason := ptr.Ptr("changed my mind")

	tests := []struct {
		name        string
		userID      int64
		booking     *domain.TestDriveBooking
		getErr      error
		expectCall  bool
		expectedErr error
	}{
		{name: "owner", userID: ownerID, booking: pendingBooking(), expectCall: true},
		{name: "admin", userID: adminID, booking: pendingBooking(), expectCall: true},
		{name: "other user", userID: otherID, booking: pendingBooking(), expectedErr: ErrAccessDenied},
		{name: "unknown user", userID: 99, booking: pendingBooking(), expectedErr: ErrAccessDenied},
		{name: "user service down", userID: 500, booking: pendingBooking(), expectedErr: ErrAccessDenied},
		{
			name:   "already cancelled",
			userID: ownerID,
			booking: func() *domain.TestDriveBooking {
				b := pendingBooking()
				b.Status = domain.StatusCancelled
				return b
			}(),
			expectedErr: ErrCannotCancel,
		},
		{name: "not found", userID: ownerID, getErr: bookingRepo.ErrBookingNotFound, expectedErr: ErrBookingNotFound},
		{name: "repository failure", userID: ownerID, getErr: errors.New("db down"), expectedErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			svc := newService(repo)

			if tt.getErr != nil {
				repo.On("GetByID", mock.Anything, int64(10)).Return(nil, tt.getErr)
			} else {
				repo.On("GetByID", mock.Anything, int64(10)).Return(tt.booking, nil)
			}
			if tt.expectCall {
				repo.On("Cancel", mock.Anything, int64(10), reason).Return(nil)
			}

			err := svc.Cancel(t.Context(), 10, &models.CancelBookingRequest{UserID: tt.userID, CancellationReason: reason})
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)

	err := svc.Cancel(t.Context(), 10, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: ptr.Ptr(strings.Repeat("r", domain.MaxCancellationReasonLength+1)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusConfirmed).Return(nil)

		err := svc.UpdateStatus(t.Context(), 10, &models.UpdateStatusRequest{UserID: adminID, Status: "CONFIRMED"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("cancel goes through Cancel", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("Cancel", mock.Anything, int64(10), (*string)(nil)).Return(nil)

		err := svc.UpdateStatus(t.Context(), 10, &models.UpdateStatusRequest{UserID: adminID, Status: "CANCELLED"})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pending to completed", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)

		err := svc.UpdateStatus(t.Context(), 10, &models.UpdateStatusRequest{UserID: adminID, Status: "COMPLETED"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)

		err := svc.UpdateStatus(t.Context(), 10, &models.UpdateStatusRequest{UserID: adminID, Status: "LOST"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("row vanished", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newService(repo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusConfirmed).Return(bookingRepo.ErrBookingNotFound)

		err := svc.UpdateStatus(t.Context(), 10, &models.UpdateStatusRequest{UserID: adminID, Status: "CONFIRMED"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetByID(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)

	resp, err := svc.GetByID(t.Context(), 10, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)

	_, err = svc.GetByID(t.Context(), 10, adminID)
	require.NoError(t, err)

	_, err = svc.GetByID(t.Context(), 10, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
