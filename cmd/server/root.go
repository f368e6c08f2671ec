package main

import (
	"fmt"
	"os"

	"github.com/blakestevenson/mediacatalog/internal/config"
	"github.com/blakestevenson/mediacatalog/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Media catalog server",
	Long:         `A REST API for keeping a per-user catalog of movies, series, courses, books and podcasts.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap loads .env, configuration and the logger shared by every command
func bootstrap() (*config.Config, *zap.Logger, error) {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(cfg.IsDevelopment(), cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger, nil
}
