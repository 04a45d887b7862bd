package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"madeasy/utils"
)

// HealthHandler reports the latest backend health snapshot. A nil monitor
// means no external backend is in use.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MadEasy"})
			return
		}
		status := monitor.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backends": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MadEasy", "backends": status})
	}
}
