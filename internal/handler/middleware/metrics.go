package middleware

import (
	"time"

	"loft-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request under its route template, or "unmatched" for 404s.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
