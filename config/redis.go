package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectRedis opens the stats cache client. Returns nil when no address is
// configured; callers treat a nil client as "cache disabled" and compute
// stats live.
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.Cache.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, stats cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, stats cache disabled")
		return nil
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("connected to redis")
	return client
}
