package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulkure2004/rahul-portfolio/internal/services"
)

// HealthHandler exposes the health check endpoint
type HealthHandler struct {
	health *services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(health *services.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.health.Check(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"status":  "degraded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}
