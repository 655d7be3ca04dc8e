package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bengobox/timestamp-service/internal/app"
	"github.com/bengobox/timestamp-service/internal/clock"
	"github.com/bengobox/timestamp-service/internal/config"
	"github.com/bengobox/timestamp-service/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	zapLogger = zapLogger.With(zap.String("service", cfg.App.ServiceName))
	defer zapLogger.Sync() //nolint:errcheck // best effort

	application := app.New(cfg, zapLogger, clock.System{})
	if err := application.Listen(); err != nil {
		zapLogger.Fatal("failed to bind listener", logger.ZapError(err))
	}

	go func() {
		if err := application.Serve(); err != nil {
			zapLogger.Fatal("server encountered error", logger.ZapError(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	zapLogger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", logger.ZapError(err))
	}
}
