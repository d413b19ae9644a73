package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chajse/EduSumm/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records method, route template, status and latency per request.
// Requests that match no route share one label to bound cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
