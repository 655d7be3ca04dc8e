package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/bengobox/timestamp-service/internal/clock"
	"github.com/bengobox/timestamp-service/internal/config"
	"github.com/bengobox/timestamp-service/internal/httpapi"
	"github.com/bengobox/timestamp-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/timestamp-service/internal/httpapi/middleware"
	"github.com/bengobox/timestamp-service/internal/metrics"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	httpServer    *http.Server
	metricsServer *http.Server

	listener        net.Listener
	metricsListener net.Listener
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger, c clock.Clock) *App {
	if c == nil {
		c = clock.System{}
	}

	m := metrics.New()
	timestampHandler := handlers.NewTimestampHandler(c)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		TimestampHandler:   timestampHandler.Timestamp,
		RequestLogger:      httpmiddleware.RequestLogger(logger),
		Instrument:         m.Instrument,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	})

	a := &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Addr(),
			Handler:           router,
			ReadTimeout:       cfg.HTTP.ReadTimeout,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			WriteTimeout:      cfg.HTTP.WriteTimeout,
			IdleTimeout:       cfg.HTTP.IdleTimeout,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}

	if cfg.Metrics.Enabled {
		a.metricsServer = &http.Server{
			Addr: cfg.Metrics.Addr,
			Handler: httpapi.NewAdminRouter(httpapi.AdminDeps{
				HealthHandler:  handlers.Health(c),
				MetricsHandler: m.Handler(),
			}),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			ErrorLog:          zap.NewStdLog(logger),
		}
	}

	return a
}

// Listen binds the public listener, and the metrics listener when enabled.
// Bind failures such as a port already in use surface here, before serving.
func (a *App) Listen() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}
	a.listener = ln

	if a.metricsServer != nil {
		mln, err := net.Listen("tcp", a.metricsServer.Addr)
		if err != nil {
			_ = ln.Close()
			a.listener = nil
			return fmt.Errorf("listen on %s: %w", a.metricsServer.Addr, err)
		}
		a.metricsListener = mln
	}
	return nil
}

// Addr returns the bound public address, or the configured one before Listen.
func (a *App) Addr() string {
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return a.httpServer.Addr
}

// MetricsAddr returns the bound metrics address, empty when metrics are off.
func (a *App) MetricsAddr() string {
	if a.metricsListener != nil {
		return a.metricsListener.Addr().String()
	}
	if a.metricsServer != nil {
		return a.metricsServer.Addr
	}
	return ""
}

// Serve blocks until the servers stop. A graceful Shutdown returns nil.
func (a *App) Serve() error {
	if a.listener == nil {
		return errors.New("serve called before listen")
	}

	errCh := make(chan error, 2)
	if a.metricsServer != nil {
		go func() {
			a.logger.Info("starting metrics server", zap.String("addr", a.MetricsAddr()))
			errCh <- ignoreClosed(a.metricsServer.Serve(a.metricsListener))
		}()
	}

	a.logger.Info("starting HTTP server", zap.String("addr", a.Addr()))
	if err := ignoreClosed(a.httpServer.Serve(a.listener)); err != nil {
		return err
	}
	if a.metricsServer != nil {
		return <-errCh
	}
	return nil
}

// Run binds and serves.
func (a *App) Run() error {
	if err := a.Listen(); err != nil {
		return err
	}
	return a.Serve()
}

// Shutdown gracefully stops the HTTP servers.
func (a *App) Shutdown(ctx context.Context) error {
	shutdownErr := a.httpServer.Shutdown(ctx)

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Warn("failed to stop metrics server", zap.Error(err))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}
	return shutdownErr
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
