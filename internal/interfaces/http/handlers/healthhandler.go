package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swiftticket/swiftticket/internal/shared/logger"
	"github.com/swiftticket/swiftticket/internal/shared/version"
)

// checkTimeout bounds each readiness check.
const checkTimeout = 2 * time.Second

// Check is one named readiness check. A nil error means ready.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and version endpoints.
type HealthHandler struct {
	checks []Check
	logger logger.Interface
}

func NewHealthHandler(log logger.Interface, checks ...Check) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: log,
	}
}

// Healthz handles GET /healthz. The process is alive if it can answer.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz handles GET /readyz. Checks run in order; the first failure is
// reported with 503.
func (h *HealthHandler) Readyz(c *gin.Context) {
	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
		err := check.Run(ctx)
		cancel()
		if err != nil {
			h.logger.Warnw("readiness check failed", "check", check.Name, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"check":  check.Name,
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Version handles GET /version.
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.String(),
		"release": version.IsRelease(),
	})
}
