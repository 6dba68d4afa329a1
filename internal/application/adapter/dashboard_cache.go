package adapter

import "context"

// DashboardCache stores computed dashboard views between writes.
// Implementations must treat a miss and a disabled cache the same way.
type DashboardCache interface {
	// Get decodes the cached value for key into dest and reports whether it was found.
	// It also returns the cache generation the lookup read, which a following Set must pass back.
	Get(ctx context.Context, key string, dest any) (generation int64, found bool, err error)

	// Set stores value under key in the given generation.
	// A value computed before an Invalidate lands in a retired generation and is never served.
	Set(ctx context.Context, key string, generation int64, value any) error

	// Invalidate discards every cached view.
	Invalidate(ctx context.Context) error
}
