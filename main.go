package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fenilmodi00/agribridge-dashboard/config"
	"github.com/fenilmodi00/agribridge-dashboard/handlers"
	"github.com/fenilmodi00/agribridge-dashboard/jobs"
	"github.com/fenilmodi00/agribridge-dashboard/services"
	"github.com/fenilmodi00/agribridge-dashboard/shared"
	"github.com/fenilmodi00/agribridge-dashboard/views"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	cfg.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	clientFactory := shared.NewHTTPClientFactory(cfg.GetFetchTimeout())
	defer clientFactory.CloseAll()

	analyticsClient := services.NewAnalyticsClient(cfg.BackendURL, clientFactory.Client(cfg.GetFetchTimeout()))
	loader := services.NewDashboardLoader(analyticsClient, cfg.GetFetchTimeout())

	renderer, err := views.NewRenderer()
	if err != nil {
		logrus.Fatalf("Failed to load dashboard templates: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"backend_url":   cfg.BackendURL,
		"fetch_timeout": cfg.GetFetchTimeout(),
		"log_level":     cfg.LogLevel,
	}).Info("AgriBridge dashboard initialized")

	// Background jobs
	jobs.NewMetricsSummaryJob(loader.Metrics, cfg.GetMetricsSummaryInterval()).Start(ctx)

	app := handlers.NewApp(handlers.NewDashboardHandler(loader, renderer))

	go func() {
		<-ctx.Done()
		logrus.Info("Shutting down dashboard server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logrus.Errorf("Server shutdown failed: %v", err)
		}
	}()

	// Start server
	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
	loader.Metrics.LogSummary()
}
