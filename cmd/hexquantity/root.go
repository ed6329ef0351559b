package main

import (
	"fmt"
	"io"

	"hexquantity/internal/adapters/storage/memory/stats"
	"hexquantity/internal/config"
	"hexquantity/internal/core/application"
	"hexquantity/internal/logger"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Flags live on closures so tests get a fresh tree.
func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "hexquantity",
		Short:         "Decode hex quantities into minimal big-endian bytes",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `Decode hex quantities such as 0x7b, 007b or 7b3 into their minimal
big-endian byte representation.

Example usage:
  hexquantity decode 0x7b3 007b
  hexquantity decode --format json deadbeef
  hexquantity serve --config config.yml`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"Path to YAML or TOML configuration file (default: "+config.DefaultConfigFilePath+")")

	rootCmd.AddCommand(newDecodeCmd(&configFile), newServeCmd(&configFile))
	return rootCmd
}

// buildService wires config, logger and stats storage into a decoder service.
func buildService(configFile string, logOut io.Writer) (*config.Config, logger.AppLogger, *application.DecoderServiceImpl, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger, logOut)
	if err != nil {
		return nil, nil, nil, err
	}

	service, err := application.NewDecoderService(stats.NewInMemoryStatsRepo(), appLogger, cfg.Decoder)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create decoder service: %w", err)
	}
	return cfg, appLogger, service, nil
}
