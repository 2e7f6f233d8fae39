// Package cache provides the Redis client used for HTTP response caching.
// Redis is optional infrastructure: when the server is unreachable at
// startup the constructor returns nil and callers degrade gracefully by
// disabling caching.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/hostelhub/internal/config"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// NewClient instantiates a Redis client from application configuration.
// The returned client may be nil if a connection cannot be established.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Ping the server with a short timeout
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, response caching disabled")
		return nil
	}

	return client
}
