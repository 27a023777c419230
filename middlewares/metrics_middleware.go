package middlewares

import (
	"strconv"
	"strings"

	"nutriassist/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests per top-level route group and status class.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		group := "root"
		if parts := strings.SplitN(strings.TrimPrefix(c.Request.URL.Path, "/"), "/", 2); parts[0] != "" {
			group = parts[0]
		}
		status := strconv.Itoa(c.Writer.Status()/100) + "xx"
		metrics.IncRequest(group, status)
	}
}
