package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"ecourts-scraper/internal/components/telemetry"

	"github.com/gin-gonic/gin"
)

const report_request_panic = "request.panic"

func Recovery(tel telemetry.API) gin.HandlerFunc {
	tel = telemetry.NewScopedAPI("http", tel)

	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			requestID := GetRequestID(c)
			tel.ReportBroken(
				report_request_panic,
				fmt.Errorf("panic: %v", recovered),
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":    false,
				"error":      "internal server error",
				"request_id": requestID,
			})
		}()
		c.Next()
	}
}
