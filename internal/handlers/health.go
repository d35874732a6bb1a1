package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learning-platform/api-backend/internal/models"
)

// NewPingHandler returns the /ping health check handler for the named service
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /ping [get]
func NewPingHandler(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := models.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Service:   serviceName,
		}

		c.JSON(http.StatusOK, response)
	}
}
