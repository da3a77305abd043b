package controller

import (
	"factcrawler/pkg/metrics"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics records the duration and status of every request labelled by the
// method and route template that served it. Requests no route matched share
// the "unmatched" label so arbitrary paths cannot grow the label set.
func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := "unmatched"
		if p := c.FullPath(); p != "" {
			route = c.Request.Method + " " + p
		}
		m.Request(c.Request.Context(), route, c.Writer.Status(), time.Since(start))
	}
}
