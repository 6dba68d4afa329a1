package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// InvalidateDashboardCache drops cached dashboard views after every successful write.
// A failed invalidation is logged and never changes the response.
func InvalidateDashboardCache(cache adapter.DashboardCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !isWrite(c.Request.Method) || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
		defer cancel()

		if err := cache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate dashboard cache",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		}
	}
}
