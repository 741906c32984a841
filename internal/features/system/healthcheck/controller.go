package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func NewHealthcheckController(healthcheckService *HealthcheckService) *HealthcheckController {
	return &HealthcheckController{healthcheckService: healthcheckService}
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
}

// Health
// @Summary Health check
// @Description Report database reachability and host resource pressure
// @Tags system
// @Produce json
// @Success 200 {object} HealthReport
// @Failure 503 {object} HealthReport
// @Router /health [get]
func (c *HealthcheckController) Health(ctx *gin.Context) {
	report, healthy := c.healthcheckService.Check(ctx.Request.Context())

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, report)
}
