package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutritrack/backend/internal/infrastructure/persistence"
)

const healthTimeout = 2 * time.Second

// Pinger is any dependency the health check probes
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolStats exposes the database pool for the health report
type PoolStats interface {
	Pinger
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler reports liveness of the process and its backing services
type HealthHandler struct {
	db      PoolStats
	cache   Pinger
	version string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler. cache may be nil.
func NewHealthHandler(db PoolStats, cache Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version, started: time.Now()}
}

// HealthStatus is the health endpoint body
type HealthStatus struct {
	Status   string                       `json:"status"`
	Version  string                       `json:"version,omitempty"`
	Uptime   string                       `json:"uptime"`
	Database string                       `json:"database"`
	Cache    string                       `json:"cache,omitempty"`
	Pool     *persistence.ConnectionStats `json:"pool,omitempty"`
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthStatus
// @Failure      503 {object} HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := HealthStatus{
		Status:   "healthy",
		Version:  h.version,
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Database: "up",
	}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		status.Status, status.Database = "unhealthy", "down"
		code = http.StatusServiceUnavailable
	} else if stats, err := h.db.Stats(); err == nil {
		status.Pool = &stats
	}
	if h.cache != nil {
		status.Cache = "up"
		// a cache outage degrades, it never fails the check
		if err := h.cache.Ping(ctx); err != nil {
			status.Cache = "down"
			if code == http.StatusOK {
				status.Status = "degraded"
			}
		}
	}
	c.JSON(code, status)
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} MessageData
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, MessageData{Message: "pong"})
}

// PingFunc adapts a plain function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
