// Package redis builds the Redis client used by the cache decorators.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/logger"
)

const pingTimeout = 3 * time.Second

// NewRedisClient connects to the configured Redis and verifies it with PING.
func NewRedisClient(cfg config.RedisConfig, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorw("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	log.Infow("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
