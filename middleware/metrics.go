package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"catalogapi/metrics"
)

// Metrics records method, route, status and duration for every handled
// request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		metrics.RecordRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
