package routes

import (
	"net/http"

	response "hvac_crm/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const PathHealth = "/health"

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathHealth, health)
}

// health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.Envelope
// @Router   /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(gin.H{"status": "ok"}))
}
