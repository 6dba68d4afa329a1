package cache

import (
	"log/slog"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/integration/cache"
)

// NewDashboardCache returns the Redis cache when enabled and reachable, and a no-op cache otherwise.
// The returned func releases the Redis connection.
func NewDashboardCache(cfg *config.RedisConfig) (adapter.DashboardCache, func()) {
	if !cfg.Enabled {
		slog.Info("Dashboard cache disabled")
		return cache.NewNoopDashboardCache(), func() {}
	}

	client, err := NewRedisClient(cfg)
	if err != nil {
		slog.Warn("Redis unavailable, dashboard cache disabled", "error", err)
		return cache.NewNoopDashboardCache(), func() {}
	}

	return cache.NewRedisDashboardCache(client, cfg.CacheTTL), func() { _ = client.Close() }
}
