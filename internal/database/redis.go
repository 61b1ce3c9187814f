package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propden/backend-go/internal/config"
)

// CacheClient wraps the redis client as a look-aside cache for read-heavy
// queries. It is never authoritative: every method tolerates a nil receiver
// and swallows store errors, so a Redis outage degrades reads to always-miss
// and never fails a request.
type CacheClient struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCacheClient creates a new cache client instance
func NewCacheClient(cfg *config.Config, logger *slog.Logger) (*CacheClient, error) {
	logger.Info("🔌 [Redis] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDatabase,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [Redis] Redis connection established")

	return &CacheClient{
		client: client,
		logger: logger,
	}, nil
}

// NewCacheClientForTesting creates a cache client with a provided redis.Client (for testing)
func NewCacheClientForTesting(client *redis.Client, logger *slog.Logger) *CacheClient {
	return &CacheClient{
		client: client,
		logger: logger,
	}
}

// Close closes the Redis connection
func (c *CacheClient) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetJSON fetches the entry under key and deserializes it into dst.
// Returns true only on a usable hit; a missing key, a store error, or a
// corrupt entry all count as a miss.
func (c *CacheClient) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("⚠️ [Redis] Cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		c.logger.Warn("⚠️ [Redis] Failed to unmarshal cached entry", "key", key, "error", err)
		return false
	}

	c.logger.Debug("✅ [Redis] Cache hit", "key", key)
	return true
}

// SetJSON stores v under key with the given TTL. Population is best-effort:
// failures are logged and swallowed.
func (c *CacheClient) SetJSON(ctx context.Context, key string, v interface{}, ttlSeconds int64) {
	if c == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("⚠️ [Redis] Failed to marshal cache entry", "key", key, "error", err)
		return
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("⚠️ [Redis] Cache write failed", "key", key, "error", err)
		return
	}

	c.logger.Debug("💾 [Redis] Cached entry", "key", key, "ttl", ttl)
}

// Delete removes the given keys. Each deletion is attempted independently
// so one failure never aborts the others; a missing key is not an error.
func (c *CacheClient) Delete(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}

	for _, key := range keys {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.Warn("⚠️ [Redis] Cache invalidation failed", "key", key, "error", err)
			continue
		}
		c.logger.Debug("🗑️ [Redis] Invalidated cache key", "key", key)
	}
}

// FlushAll clears the entire cache namespace. Used after property writes,
// where the affected geo-query keys cannot be enumerated.
func (c *CacheClient) FlushAll(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.FlushDB(ctx).Err(); err != nil {
		c.logger.Warn("⚠️ [Redis] Cache flush failed", "error", err)
		return
	}

	c.logger.Debug("🗑️ [Redis] Flushed cache namespace")
}

// GetClient returns the underlying Redis client (for advanced use cases)
func (c *CacheClient) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}
