package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/observability"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResponseCache is a short-TTL read-through cache for upstream responses.
// It is best-effort on top of an optional Redis client: with no client, or
// on any Redis error, lookups simply go to the upstream.
type ResponseCache struct {
	client *redis.Client
	logger *logging.SafeLogger
}

// NewResponseCache wraps client, which may be nil.
func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{
		client: client,
		logger: logging.NewSafeLogger("response_cache"),
	}
}

// GetJSON loads a cached value into dest. Returns false on miss, disabled
// cache, or any error.
func (c *ResponseCache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		observability.CacheHits.WithLabelValues("miss").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		observability.CacheHits.WithLabelValues("miss").Inc()
		return false
	}

	observability.CacheHits.WithLabelValues("hit").Inc()
	return true
}

// SetJSON stores value under key with a TTL. Failures are logged, never
// surfaced: caching must not affect lookup outcomes.
func (c *ResponseCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
