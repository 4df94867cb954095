package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/middleware"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/response"
)

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type metricsSource interface {
	Handler() http.Handler
	Snapshot() dto.SystemMetrics
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) (int, error)
}

// SystemHandler exposes health, readiness and observability endpoints.
type SystemHandler struct {
	metrics metricsSource
	cache   cacheInvalidator
	checks  map[string]Pinger
}

// NewSystemHandler constructs the handler. checks are pinged by Ready.
func NewSystemHandler(metrics metricsSource, cache cacheInvalidator, checks map[string]Pinger) *SystemHandler {
	return &SystemHandler{metrics: metrics, cache: cache, checks: checks}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}
	state := "ready"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": results})
}

// Metrics godoc
// @Summary Instrumentation summary
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /system/metrics [get]
func (h *SystemHandler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "metrics disabled"))
		return
	}
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), middleware.Meta(c))
}

// InvalidateCache godoc
// @Summary Drop cached reference data
// @Tags System
// @Produce json
// @Param pattern query string false "Key pattern, default *"
// @Success 200 {object} response.Envelope
// @Router /system/cache/invalidate [post]
func (h *SystemHandler) InvalidateCache(c *gin.Context) {
	pattern := c.DefaultQuery("pattern", "*")
	removed := 0
	if h.cache != nil {
		var err error
		removed, err = h.cache.Invalidate(c.Request.Context(), pattern)
		if err != nil {
			response.Error(c, err)
			return
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"pattern": pattern, "removed": removed}, middleware.Meta(c))
}
