package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/unitconv/internal/config"
	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/platform/metrics"
	"github.com/phrazzld/unitconv/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// metrics is nil when the metrics endpoint is disabled
	metrics *metrics.Metrics

	table             *units.Table
	conversionService service.ConversionService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		table:  units.Default(),
	}

	// Keep the recorder interface nil (not a typed nil) when metrics are off
	var recorder service.MetricsRecorder
	if cfg.Metrics.Enabled {
		app.metrics = metrics.NewMetrics()
		recorder = app.metrics
	}

	var err error
	app.conversionService, err = service.NewConversionService(app.table, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"categories", app.table.CategoryNames())
	return app, nil
}

// Run starts the application server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
