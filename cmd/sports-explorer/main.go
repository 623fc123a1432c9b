package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"sports-explorer/internal/config"
	"sports-explorer/internal/logger"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "sports-explorer",
		Short: "Sports Explorer - browse TheSportsDB from the desktop",
		Long: `Sports Explorer is a desktop client for TheSportsDB.
It lists sports, searches players and teams, and compares two teams head to head.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. 127.0.0.1:9464")

	return rootCmd
}

// loadConfig layers command line flags over the file and environment.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	appLogger, err := logger.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	return NewApplication(ctx, newFyneApp(), cfg, appLogger).Run()
}
