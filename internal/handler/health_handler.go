package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the Postgres and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	serviceName string
	db          Pinger
	cache       Pinger
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when Redis is disabled.
func NewHealthHandler(serviceName string, db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, db: db, cache: cache}
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
	})
}

// Ready checks if the service is ready to accept traffic
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not_ready",
			"service":  h.serviceName,
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	body := gin.H{
		"status":   "ready",
		"service":  h.serviceName,
		"database": "connected",
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"service":  h.serviceName,
				"database": "connected",
				"redis":    "disconnected",
				"error":    err.Error(),
			})
			return
		}
		body["redis"] = "connected"
	}

	c.JSON(http.StatusOK, body)
}
