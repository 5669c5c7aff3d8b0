package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TestDriveService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TestDriveService/internal/integrations/userservice"
	"github.com/m04kA/SMC-TestDriveService/internal/service/bookings/models"
)

// Service user and admin operations on existing test drive bookings
type Service struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the bookings service
func NewService(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID returns a booking visible to the owner or an admin
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, "GetByID", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		if err := s.checkAdminAccess(ctx, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings returns the reservations of a user, optionally filtered by status
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings admin listing with car, period, status and make/model search filters
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	// Validate filters
	if req.Search != nil {
		trimmed := strings.TrimSpace(*req.Search)
		if utf8.RuneCountInString(trimmed) > domain.MaxSearchLength {
			s.logger.Warn("GetAllBookings: search is longer than %d characters", domain.MaxSearchLength)
			return nil, fmt.Errorf("%w: search must not exceed %d characters", ErrInvalidInput, domain.MaxSearchLength)
		}
		req.Search = &trimmed
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetAllBookings: endDate is before startDate")
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Fetch bookings
	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking.
// The owner may cancel their own booking, an admin may cancel any.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		// Owner or admin
		if booking.UserID != req.UserID {
			if err := s.checkAdminAccess(txCtx, req.UserID); err != nil {
				s.logger.Warn("Cancel: user=%d may not cancel booking id=%d", req.UserID, bookingID)
				return err
			}
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		// Cancel with the optional reason
		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			return s.repositoryError("Cancel", bookingID, err)
		}

		s.logger.Info("Cancel: cancelled booking id=%d", bookingID)
		return nil
	})
}

// UpdateStatus admin status change following the allowed transitions
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d can't go from %s to %s", bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		// Cancellation also sets cancelled_at
		if newStatus == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, bookingID, nil)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus)
		}
		if err != nil {
			return s.repositoryError("UpdateStatus", bookingID, err)
		}

		s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, newStatus)
		return nil
	})
}

func (s *Service) getBooking(ctx context.Context, op string, bookingID int64) (*domain.TestDriveBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.repositoryError(op, bookingID, err)
	}
	return booking, nil
}

func (s *Service) repositoryError(op string, bookingID int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found", op, bookingID)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// checkAdminAccess denies when the role can't be resolved
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	role, err := s.userClient.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user=%d not found in UserService", userID)
			return ErrAccessDenied
		}
		s.logger.Warn("checkAdminAccess: role of user=%d unknown: %v", userID, err)
		return ErrAccessDenied
	}

	if role != userservice.RoleAdmin {
		return ErrAccessDenied
	}
	return nil
}
