package middleware

import (
	"flight-parser/observability"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests and observes their duration.
// Paths are labelled by route template so unknown URLs cannot grow the label set.
func Metrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.RequestCounter.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
