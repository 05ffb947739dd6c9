package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luachhq/luach-api/internal/service"
)

// Metrics records request counts and latency for every route. Unmatched paths
// are collapsed into a single label to keep cardinality bounded.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
