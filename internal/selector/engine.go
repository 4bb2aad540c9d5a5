package selector

import (
	"net/http"

	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewEngine wires the selector routes behind the standard middleware chain.
func NewEngine(s Server, metrics *middleware.Metrics, tel telemetry.API) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.AccessLog(tel),
		metrics.Middleware(),
		middleware.Recovery(tel),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	s.Register(engine)

	return engine
}
