package dealership

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/service/dealership/models"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

type fakeRepo struct {
	entries    []domain.WorkingHoursEntry
	replaceErr error
	inTx       bool
	replacedTx bool
}

func (r *fakeRepo) GetWorkingHours(context.Context) ([]domain.WorkingHoursEntry, error) {
	return r.entries, nil
}

func (r *fakeRepo) ReplaceWorkingHours(_ context.Context, entries []domain.WorkingHoursEntry) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replacedTx = r.inTx
	r.entries = entries
	return nil
}

type fakeTx struct{ repo *fakeRepo }

func (t fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.repo.inTx = true
	defer func() { t.repo.inTx = false }()
	return fn(ctx)
}

type fakeCache struct {
	invalidated int
	err         error
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	return c.err
}

func week() []models.WorkingHours {
	return []models.WorkingHours{
		{DayOfWeek: "sunday", IsOpen: false, OpenTime: "10:00", CloseTime: "12:00"},
		{DayOfWeek: "MONDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: "TUESDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: "WEDNESDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: "THURSDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: "FRIDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "20:00"},
		{DayOfWeek: "Saturday", IsOpen: true, OpenTime: "10:00:00", CloseTime: "16:00"},
	}
}

func TestService_UpdateWorkingHours(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{}
	svc := NewService(repo, repo, cache, fakeTx{repo: repo}, "Central Motors", logger.Nop())

	resp, err := svc.UpdateWorkingHours(t.Context(), &models.UpdateWorkingHoursRequest{UserID: 1, WorkingHours: week()})
	require.NoError(t, err)

	require.Len(t, repo.entries, 7)
	assert.True(t, repo.replacedTx)
	assert.Equal(t, 1, cache.invalidated)

	// ordered Monday to Sunday, names normalized, closed day has no times
	assert.Equal(t, domain.Monday, repo.entries[0].DayOfWeek)
	assert.Equal(t, domain.WorkingHoursEntry{DayOfWeek: domain.Saturday, IsOpen: true, OpenTime: "10:00", CloseTime: "16:00"}, repo.entries[5])
	assert.Equal(t, domain.WorkingHoursEntry{DayOfWeek: domain.Sunday}, repo.entries[6])

	assert.Equal(t, "Central Motors", resp.DealershipName)
	assert.Equal(t, "SUNDAY", resp.WorkingHours[6].DayOfWeek)
	assert.Empty(t, resp.WorkingHours[6].OpenTime)
}

func TestService_UpdateWorkingHours_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(w []models.WorkingHours) []models.WorkingHours
	}{
		{name: "six days", modify: func(w []models.WorkingHours) []models.WorkingHours { return w[1:] }},
		{name: "duplicate day", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[0].DayOfWeek = "MONDAY"
			return w
		}},
		{name: "unknown day", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[0].DayOfWeek = "SUN"
			return w
		}},
		{name: "open after close", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[1].OpenTime = "18:00"
			w[1].CloseTime = "09:00"
			return w
		}},
		{name: "open equals close", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[1].CloseTime = "09:00"
			return w
		}},
		{name: "malformed time", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[2].OpenTime = "9am"
			return w
		}},
		{name: "missing time", modify: func(w []models.WorkingHours) []models.WorkingHours {
			w[3].CloseTime = ""
			return w
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			cache := &fakeCache{}
			svc := NewService(repo, repo, cache, fakeTx{repo: repo}, "Central Motors", logger.Nop())

			_, err := svc.UpdateWorkingHours(t.Context(), &models.UpdateWorkingHoursRequest{WorkingHours: tt.modify(week())})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.entries)
			assert.Zero(t, cache.invalidated)
		})
	}
}

func TestService_UpdateWorkingHours_Failures(t *testing.T) {
	t.Run("repository", func(t *testing.T) {
		repo := &fakeRepo{replaceErr: errors.New("deadlock")}
		cache := &fakeCache{}
		svc := NewService(repo, repo, cache, fakeTx{repo: repo}, "", logger.Nop())

		_, err := svc.UpdateWorkingHours(t.Context(), &models.UpdateWorkingHoursRequest{WorkingHours: week()})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Zero(t, cache.invalidated)
	})

	t.Run("cache invalidation is not fatal", func(t *testing.T) {
		repo := &fakeRepo{}
		cache := &fakeCache{err: errors.New("redis down")}
		svc := NewService(repo, repo, cache, fakeTx{repo: repo}, "", logger.Nop())

		_, err := svc.UpdateWorkingHours(t.Context(), &models.UpdateWorkingHoursRequest{WorkingHours: week()})
		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("no cache", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, repo, nil, fakeTx{repo: repo}, "", logger.Nop())

		_, err := svc.UpdateWorkingHours(t.Context(), &models.UpdateWorkingHoursRequest{WorkingHours: week()})
		require.NoError(t, err)
	})
}

func TestService_GetWorkingHours(t *testing.T) {
	repo := &fakeRepo{entries: []domain.WorkingHoursEntry{
		{DayOfWeek: domain.Monday, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
	}}
	svc := NewService(repo, repo, nil, fakeTx{repo: repo}, "Central Motors", logger.Nop())

	resp, err := svc.GetWorkingHours(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []models.WorkingHours{{DayOfWeek: "MONDAY", IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}}, resp.WorkingHours)
}
