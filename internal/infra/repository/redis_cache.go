package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// CachedRepository serves barber schedules and unavailable dates from
// redis and delegates everything else to the wrapped repository. Writes
// go to the inner store first and then drop the cached key. A redis error
// never fails a call; it only bypasses the cache.
type CachedRepository struct {
	domain.Repository

	client *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewCachedRepository(
	inner domain.Repository,
	client *redis.Client,
	ttl time.Duration,
	logger *zerolog.Logger,
) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

func scheduleKey(barberID string) string {
	return fmt.Sprintf("barber_schedule:%s", barberID)
}

func unavailableKey(barberID string) string {
	return fmt.Sprintf("barber_unavailable:%s", barberID)
}

func (r *CachedRepository) GetSchedule(ctx context.Context, barberID string) (*models.BarberSchedule, error) {
	var cached models.BarberSchedule
	if r.get(ctx, scheduleKey(barberID), &cached) {
		return &cached, nil
	}

	s, err := r.Repository.GetSchedule(ctx, barberID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, scheduleKey(barberID), s)
	return s, nil
}

func (r *CachedRepository) SaveSchedule(ctx context.Context, s *models.BarberSchedule) error {
	if err := r.Repository.SaveSchedule(ctx, s); err != nil {
		return err
	}
	r.invalidate(ctx, scheduleKey(s.BarberID))
	return nil
}

func (r *CachedRepository) ListUnavailableDates(ctx context.Context, barberID string) ([]models.UnavailableDate, error) {
	var cached []models.UnavailableDate
	if r.get(ctx, unavailableKey(barberID), &cached) {
		return cached, nil
	}

	list, err := r.Repository.ListUnavailableDates(ctx, barberID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, unavailableKey(barberID), list)
	return list, nil
}

func (r *CachedRepository) AddUnavailableDate(ctx context.Context, d *models.UnavailableDate) error {
	if err := r.Repository.AddUnavailableDate(ctx, d); err != nil {
		return err
	}
	r.invalidate(ctx, unavailableKey(d.BarberID))
	return nil
}

func (r *CachedRepository) RemoveUnavailableDate(ctx context.Context, barberID, date string) error {
	if err := r.Repository.RemoveUnavailableDate(ctx, barberID, date); err != nil {
		return err
	}
	r.invalidate(ctx, unavailableKey(barberID))
	return nil
}

func (r *CachedRepository) get(ctx context.Context, key string, dst any) bool {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("schedule cache read failed")
		return false
	}
	if err := json.Unmarshal(val, dst); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("schedule cache entry corrupt")
		r.invalidate(ctx, key)
		return false
	}
	return true
}

func (r *CachedRepository) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("schedule cache write failed")
	}
}

func (r *CachedRepository) invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("schedule cache invalidation failed")
	}
}

// Ping checks the redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

var _ domain.Repository = (*CachedRepository)(nil)
