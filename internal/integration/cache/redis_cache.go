// Package cache implements the dashboard view cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

const versionKey = "dashboard:version"

// redisDashboardCache stores views under a versioned namespace.
// Invalidate bumps the version, so stale entries are never read again and expire through their TTL.
type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDashboardCache creates a Redis backed dashboard cache.
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) adapter.DashboardCache {
	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisDashboardCache) Get(ctx context.Context, key string, dest any) (int64, bool, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return 0, false, err
	}

	raw, err := c.client.Get(ctx, entryKey(generation, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return generation, false, nil
	}
	if err != nil {
		return generation, false, fmt.Errorf("failed to read cached view: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return generation, false, fmt.Errorf("failed to decode cached view: %w", err)
	}
	return generation, true, nil
}

// Set writes under the generation the caller read, never the current one.
// If a write invalidated the cache while the view was being computed, the entry is orphaned and expires.
func (c *redisDashboardCache) Set(ctx context.Context, key string, generation int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	if err := c.client.Set(ctx, entryKey(generation, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache view: %w", err)
	}
	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}

func (c *redisDashboardCache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return generation, nil
}

func entryKey(generation int64, key string) string {
	return fmt.Sprintf("dashboard:v%d:%s", generation, key)
}
