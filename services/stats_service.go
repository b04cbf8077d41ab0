package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"hotel-backoffice/failure"
	"hotel-backoffice/models"
	"hotel-backoffice/repository"
)

const (
	customerStatsKey = "stats:customers"
	bookingStatsKey  = "stats:bookings"
)

type CustomerStats struct {
	Total    int            `json:"total"`
	ByGender map[string]int `json:"byGender"`
}

type BookingStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"byStatus"`
	ByPayment   map[string]int `json:"byPayment"`
	Revenue     float64        `json:"revenue"`
	Outstanding float64        `json:"outstanding"`
}

// StatsService computes the dashboard counters. Results are cached in redis
// with a short TTL; a nil client disables caching and every call computes
// live.
type StatsService struct {
	customers repository.CustomerRepository
	bookings  repository.BookingRepository
	cache     *redis.Client
	ttl       time.Duration
}

func NewStatsService(
	customers repository.CustomerRepository,
	bookings repository.BookingRepository,
	cache *redis.Client,
	ttl time.Duration,
) *StatsService {
	return &StatsService{customers: customers, bookings: bookings, cache: cache, ttl: ttl}
}

func (s *StatsService) CustomerStats(ctx context.Context) (*CustomerStats, error) {
	var cached CustomerStats
	if s.readCache(ctx, customerStatsKey, &cached) {
		return &cached, nil
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}

	stats := &CustomerStats{
		Total:    len(customers),
		ByGender: map[string]int{},
	}
	for _, c := range customers {
		stats.ByGender[c.Gender]++
	}

	s.writeCache(ctx, customerStatsKey, stats)
	return stats, nil
}

func (s *StatsService) BookingStats(ctx context.Context) (*BookingStats, error) {
	var cached BookingStats
	if s.readCache(ctx, bookingStatsKey, &cached) {
		return &cached, nil
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}

	stats := &BookingStats{
		Total:     len(bookings),
		ByStatus:  map[string]int{},
		ByPayment: map[string]int{},
	}
	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		stats.ByPayment[b.PaymentStatus]++
		switch b.PaymentStatus {
		case models.PaymentPaid:
			stats.Revenue += b.TotalAmount
		case models.PaymentPending:
			if b.Status != models.StatusCancelled {
				stats.Outstanding += b.TotalAmount
			}
		}
	}

	s.writeCache(ctx, bookingStatsKey, stats)
	return stats, nil
}

// Invalidate drops both cached stat entries. Called after every customer or
// booking write.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, customerStatsKey, bookingStatsKey).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate stats cache")
	}
}

func (s *StatsService) readCache(ctx context.Context, key string, value interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stats cache entry corrupt")
		return false
	}
	return true
}

func (s *StatsService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
