package middleware

import (
	"time"

	"ecourts-scraper/internal/components/telemetry"

	"github.com/gin-gonic/gin"
)

const report_request_failed = "request.failed"

// AccessLog reports every request to `tel`, server errors as broken.
func AccessLog(tel telemetry.API) gin.HandlerFunc {
	tel = telemetry.NewScopedAPI("http", tel)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		params := []any{
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}
		if status >= 500 {
			tel.ReportBroken(report_request_failed, params...)
			return
		}
		tel.ReportDebug("request completed", params...)
	}
}
