package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/phrazzld/unitconv/internal/config"
	"github.com/stretchr/testify/require"
)

// CreateMinimalTestConfig returns a valid configuration for tests.
func CreateMinimalTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			LogFormat:              "json",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 5,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
	require.NoError(t, config.Validate(cfg))
	return cfg
}

// CreateTestLogger returns a debug logger writing JSON into a buffer.
func CreateTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}

// newTestApplication builds an application from cfg, failing the test on error.
func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	logger, _ := CreateTestLogger(t)
	app, err := newApplication(cfg, logger)
	require.NoError(t, err)
	return app
}
