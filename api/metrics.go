package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	metricRequests = "requests"
	metricLatency  = "latency"
)

// metricsMiddleware counts and times the api requests per route and status
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		scope := s.scope.Tagged(map[string]string{
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		scope.Counter(metricRequests).Inc(1)
		scope.Timer(metricLatency).Record(time.Since(start))
	}
}
