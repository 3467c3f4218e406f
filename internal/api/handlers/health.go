package handlers

import (
	"context"
	"net/http"
	"time"

	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/logger"

	"github.com/gin-gonic/gin"
)

const healthProbeKey = "healthProbe"

// HealthHandler reports whether the key-value backend answers.
type HealthHandler struct {
	store kvstore.Store
	log   logger.Logger
}

func NewHealthHandler(store kvstore.Store, log logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// HealthCheck handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check that the service is up and its storage backend answers
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"Storage unreachable"
//	@Router			/health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if _, _, err := h.store.Get(ctx, healthProbeKey); err != nil {
		h.log.WithError(err).Warn("Health check: storage unreachable", nil)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": "ok"})
}
