package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/config"
	"github.com/roomcast/roomcast/internal/core"
)

// NewServer builds the HTTP server hosting the health check and the
// WebSocket endpoint.
func NewServer(router *core.Router, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	ws := NewWSHandler(router, cfg.EventBuffer, logger)
	engine.GET("/healthz", healthHandler)
	engine.GET("/ws", ws.Handle)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
