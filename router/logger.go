package router

import (
	"strings"
	"time"

	"widgetbrain/logger"
	"widgetbrain/middleware"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency; level follows the status class.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if ids := middleware.GetRequestIDs(c.Request.Context()); ids != nil {
			fields = append(fields, "request_id", ids.RequestID, "trace_id", ids.TraceID)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
