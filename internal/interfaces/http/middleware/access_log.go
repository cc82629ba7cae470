package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sales_analytics/pkg/logger"
)

type RequestObserver interface {
	ObserveRequest(method, route, status string, elapsed time.Duration)
}

// AccessLog logs each request and reports it to obs when obs is not nil.
func AccessLog(log logger.Logger, obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if obs != nil {
			obs.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), elapsed)
		}

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("route", route),
			logger.Int("status", status),
			logger.Duration("latency", elapsed),
			logger.String("client_ip", c.ClientIP()),
		}
		l := log.WithContext(c.Request.Context())
		if status >= 500 {
			l.Error("request failed", fields...)
			return
		}
		l.Info("request handled", fields...)
	}
}
