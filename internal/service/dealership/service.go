package dealership

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/service/dealership/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

// Service reads and replaces the dealership weekly schedule
type Service struct {
	repo      WorkingHoursRepository
	reader    WorkingHoursReader
	cache     CacheInvalidator
	txManager TransactionManager
	name      string
	logger    Logger
}

// NewService creates the dealership service.
// cache may be nil when working hours are not cached.
func NewService(
	repo WorkingHoursRepository,
	reader WorkingHoursReader,
	cache CacheInvalidator,
	txManager TransactionManager,
	name string,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		reader:    reader,
		cache:     cache,
		txManager: txManager,
		name:      name,
		logger:    logger,
	}
}

// GetWorkingHours returns the weekly schedule
func (s *Service) GetWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error) {
	entries, err := s.reader.GetWorkingHours(ctx)
	if err != nil {
		s.logger.Error("GetWorkingHours: failed to load working hours: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHours(s.name, entries), nil
}

// UpdateWorkingHours replaces the whole weekly schedule.
//
// Exactly one entry per weekday is required; open days need open < close.
// Times of closed days are dropped.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating schedule by user=%d", req.UserID)

	entries, err := normalizeWorkingHours(req.WorkingHours)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	// Replace the whole week atomically
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.ReplaceWorkingHours(txCtx, entries)
	})
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		// stale entries expire with the TTL
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("UpdateWorkingHours: %v", err)
		}
	}

	s.logger.Info("UpdateWorkingHours: schedule updated")
	return models.FromDomainWorkingHours(s.name, entries), nil
}

// normalizeWorkingHours validates the request and orders it Monday to Sunday
func normalizeWorkingHours(in []models.WorkingHours) ([]domain.WorkingHoursEntry, error) {
	if len(in) != domain.DaysInWeek {
		return nil, fmt.Errorf("%w: expected %d days, got %d", ErrInvalidInput, domain.DaysInWeek, len(in))
	}

	byDay := make(map[domain.DayOfWeek]domain.WorkingHoursEntry, domain.DaysInWeek)

	for _, wh := range in {
		day, ok := domain.ParseDayOfWeek(wh.DayOfWeek)
		if !ok {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, wh.DayOfWeek)
		}
		if _, dup := byDay[day]; dup {
			return nil, fmt.Errorf("%w: duplicate day %s", ErrInvalidInput, day)
		}

		entry := domain.WorkingHoursEntry{DayOfWeek: day, IsOpen: wh.IsOpen}

		if wh.IsOpen {
			openTime, err := types.NewTimeStringFromString(wh.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %s openTime: %v", ErrInvalidInput, day, err)
			}
			closeTime, err := types.NewTimeStringFromString(wh.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %s closeTime: %v", ErrInvalidInput, day, err)
			}
			if !openTime.IsBefore(closeTime) {
				return nil, fmt.Errorf("%w: %s openTime must be before closeTime", ErrInvalidInput, day)
			}
			entry.OpenTime = openTime.String()
			entry.CloseTime = closeTime.String()
		}

		byDay[day] = entry
	}

	entries := make([]domain.WorkingHoursEntry, 0, domain.DaysInWeek)
	for _, day := range domain.AllDays {
		entries = append(entries, byDay[day])
	}

	return entries, nil
}
