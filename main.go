package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/learning-platform/api-backend/internal/config"
	"github.com/learning-platform/api-backend/internal/logging"
	"github.com/learning-platform/api-backend/internal/router"
	"github.com/learning-platform/api-backend/internal/services"
)

// @title Learning Platform API
// @version 1.0
// @description Greeting endpoints of the learning platform backend.
// @BasePath /
func main() {
	// Load .env and environment configuration
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.Config{ServiceName: "api-backend"}).Fatal("failed to load configuration", zap.Error(err))
	}

	logger := logging.New(logging.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	engine := router.New(router.Options{
		APIPrefix:       cfg.APIPrefix,
		ServiceName:     cfg.ServiceName,
		GreetingService: services.NewGreetingService(services.SystemClock{}),
		Logger:          logger,
		Registry:        registry,
		SwaggerEnabled:  cfg.SwaggerEnabled,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("addr", server.Addr),
			zap.String("api_prefix", cfg.APIPrefix),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
