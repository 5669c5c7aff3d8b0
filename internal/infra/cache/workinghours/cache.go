// Package workinghours caches the dealership working hours in Redis.
package workinghours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

const cacheKey = "testdrive:dealership:working_hours"

// ErrInvalidate is returned when the cached value could not be dropped
var ErrInvalidate = errors.New("workinghours.cache: failed to invalidate")

// Source loads working hours on a cache miss
type Source interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type cachedEntry struct {
	DayOfWeek string `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Cache read-through cache in front of Source.
// Redis failures are logged and fall through to Source.
type Cache struct {
	source Source
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

func NewCache(source Source, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetWorkingHours returns the cached table or loads and caches it
func (c *Cache) GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error) {
	if entries, ok := c.read(ctx); ok {
		return entries, nil
	}

	entries, err := c.source.GetWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	c.write(ctx, entries)
	return entries, nil
}

// Invalidate drops the cached table
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidate, err)
	}
	return nil
}

func (c *Cache) read(ctx context.Context) ([]domain.WorkingHoursEntry, bool) {
	val, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("WorkingHoursCache: get failed: %v", err)
		}
		return nil, false
	}

	var cached []cachedEntry
	if err := json.Unmarshal(val, &cached); err != nil {
		c.logger.Warn("WorkingHoursCache: corrupt value: %v", err)
		return nil, false
	}

	entries := make([]domain.WorkingHoursEntry, 0, len(cached))
	for _, e := range cached {
		entries = append(entries, domain.WorkingHoursEntry{
			DayOfWeek: domain.DayOfWeek(e.DayOfWeek),
			IsOpen:    e.IsOpen,
			OpenTime:  e.OpenTime,
			CloseTime: e.CloseTime,
		})
	}
	return entries, true
}

func (c *Cache) write(ctx context.Context, entries []domain.WorkingHoursEntry) {
	cached := make([]cachedEntry, 0, len(entries))
	for _, e := range entries {
		cached = append(cached, cachedEntry{
			DayOfWeek: string(e.DayOfWeek),
			IsOpen:    e.IsOpen,
			OpenTime:  e.OpenTime,
			CloseTime: e.CloseTime,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		c.logger.Warn("WorkingHoursCache: marshal failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("WorkingHoursCache: set failed: %v", err)
	}
}
