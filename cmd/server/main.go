// Package main implements the entry point for the unit conversion API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
)

// main loads configuration, sets up logging, wires the application and
// serves HTTP until interrupted.
func main() {
	fmt.Fprintln(os.Stderr, "Unit Converter API Server Starting...")

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat,
		"metrics_enabled", cfg.Metrics.Enabled)

	return newApplication(cfg, logger)
}
