package handlers

import (
	"net/http"

	"slotdesk/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /healthz from the background monitor's snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
