package main

import (
	"context"
	"errors"
	"time"

	"github.com/blakestevenson/mediacatalog/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Connect to the configured PostgreSQL database, create the media schema if missing, and exit.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cfg.UsesDatabase() {
		return errors.New("no database configured: set DATABASE_URL or CATALOG_DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.Database.URL, db.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	}, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	return db.Migrate(ctx, pool, logger)
}
