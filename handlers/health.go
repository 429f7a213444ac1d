package handlers

import (
	"net/http"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest store health snapshot. A down store means
// the whole dashboard is down (fail-closed), so Mongo being unreachable is a
// 503.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
