// Package cli implements the unitconv command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/unitconv/internal/config"
	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/platform/logger"
	"github.com/phrazzld/unitconv/internal/service"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

// conversionService backs every command. It is built on first use unless
// already set by SetConversionService.
var conversionService service.ConversionService

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert values between units of measurement",
	Long: `unitconv converts a numeric value between units of one category:
Length, Temperature, Weight or Volume.

Units may be given by name (case-insensitive) or by symbol, e.g.
  unitconv convert 1000 Meters km
  unitconv convert -- -40 Celsius Fahrenheit`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// SetConversionService replaces the service used by the commands.
func SetConversionService(svc service.ConversionService) {
	conversionService = svc
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func initServices(cmd *cobra.Command, _ []string) error {
	if conversionService != nil {
		return nil
	}

	log, err := logger.SetupWithWriter(config.ServerConfig{
		LogLevel:  logLevel,
		LogFormat: "text",
	}, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	svc, err := service.NewConversionService(units.Default(), nil, log)
	if err != nil {
		return fmt.Errorf("failed to create conversion service: %w", err)
	}
	conversionService = svc
	return nil
}
