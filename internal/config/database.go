package config

import (
	"context"
	"time"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// Redis client used as a short-TTL upstream-response cache.
	// Nil when REDIS_URI is not configured; callers must treat it as optional.
	Redis *redis.Client
)

// InitRedis initializes the Redis connection when configured.
// The cache is optional: the service stays fully functional without it,
// every lookup just goes straight to the upstream.
func InitRedis() {
	if AppConfig.RedisURI == "" {
		logging.Logger.Info("redis not configured, upstream-response cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Warn("redis unreachable, upstream-response cache disabled",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err),
		)
		return
	}

	Redis = client
	logging.Logger.Info("connected to redis", zap.String("uri", AppConfig.RedisURI))
}
