package handlers

import (
	"net/http"

	"huddle/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last observed state of the backing stores. The
// monitor samples on a fixed interval, so the snapshot may be up to a minute
// stale; before the first sample it reports "starting".
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if status.CheckedAt.IsZero() {
		c.JSON(http.StatusOK, gin.H{"status": "starting"})
		return
	}

	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	for _, ok := range status.Redis {
		if !ok {
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, status)
}
