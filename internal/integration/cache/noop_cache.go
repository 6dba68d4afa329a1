package cache

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

type noopDashboardCache struct{}

// NewNoopDashboardCache returns a cache that never stores anything. It is used when Redis is disabled.
func NewNoopDashboardCache() adapter.DashboardCache {
	return noopDashboardCache{}
}

func (noopDashboardCache) Get(context.Context, string, any) (int64, bool, error) { return 0, false, nil }

func (noopDashboardCache) Set(context.Context, string, int64, any) error { return nil }

func (noopDashboardCache) Invalidate(context.Context) error { return nil }
