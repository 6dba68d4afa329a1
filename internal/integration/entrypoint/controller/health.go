package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthController reports whether the record store is reachable.
type HealthController struct {
	pingStore func(ctx context.Context) error
	now       func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil pingStore reports the database as disconnected.
func NewHealthController(pingStore func(ctx context.Context) error, now func() time.Time) *HealthController {
	if now == nil {
		now = time.Now
	}
	return &HealthController{
		pingStore: pingStore,
		now:       now,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  h.databaseStatus(c.Request.Context()),
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthController) databaseStatus(ctx context.Context) string {
	if h.pingStore == nil {
		return "disconnected"
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.pingStore(ctx); err != nil {
		slog.Warn("Record store ping failed", "error", err)
		return "disconnected"
	}
	return "connected"
}
