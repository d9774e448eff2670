package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Service health
// @Description Liveness plus host memory and disk stats
// @Tags system
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	status, err := c.healthcheckService.GetHealthStatus()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
