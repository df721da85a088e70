// Package cache keeps the catalog statistics views in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/snnyvrz/bookstore/internal/config"
)

const DefaultKey = "bookstore:stats"

// RedisStatsCache stores every statistics view as a field of one hash so
// that a single DEL drops all of them.
type RedisStatsCache struct {
	rc  redis.Cmdable
	key string
	ttl time.Duration
}

func NewRedisStatsCache(rc redis.Cmdable, key string, ttl time.Duration) *RedisStatsCache {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStatsCache{rc: rc, key: key, ttl: ttl}
}

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// Get decodes the cached field into dst. A missing field is a miss, not an
// error.
func (c *RedisStatsCache) Get(ctx context.Context, field string, dst any) (bool, error) {
	raw, err := c.rc.HGet(ctx, c.key, field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, field string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	pipe := c.rc.TxPipeline()
	pipe.HSet(ctx, c.key, field, raw)
	if c.ttl > 0 {
		pipe.Expire(ctx, c.key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	if err := c.rc.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
