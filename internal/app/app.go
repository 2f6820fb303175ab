package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/config"
	"github.com/roomcast/roomcast/internal/core"
	transporthttp "github.com/roomcast/roomcast/internal/transport/http"
)

// App wires together the core router and the transport layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration. Each App
// owns its own registry; its lifetime is scoped to the server process.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	router := core.NewRouter(core.NewRegistry(), newFormatter(cfg.Templates), logger)
	server := transporthttp.NewServer(router, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}

// newFormatter applies configured template overrides on top of the
// built-in defaults.
func newFormatter(t config.Templates) *core.TemplateFormatter {
	formatter := core.NewTemplateFormatter()
	if t.Welcome != "" {
		formatter.WelcomeTemplate = t.Welcome
	}
	if t.Connected != "" {
		formatter.ConnectedTemplate = t.Connected
	}
	if t.Disconnected != "" {
		formatter.DisconnectedTemplate = t.Disconnected
	}
	return formatter
}
