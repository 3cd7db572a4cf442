// Package cache owns the Redis client used by the response-cache and
// rate-limit middleware. Redis is optional: when REDIS_ADDR is unset or
// the server is unreachable the client is nil and both middlewares
// degrade to pass-through.
package cache

import (
	"context"
	"time"

	"gallery-app/config"
	"gallery-app/internal/infra/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to REDIS_ADDR. Returns nil when Redis is not
// configured or cannot be reached; callers must treat nil as disabled.
func NewRedisClient() *redis.Client {
	if config.REDIS_ADDR == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.REDIS_ADDR})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.L().Warn("redis unreachable, caching and rate limiting disabled",
			zap.String("addr", config.REDIS_ADDR), zap.Error(err))
		return nil
	}
	return client
}
