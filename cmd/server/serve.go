package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blakestevenson/mediacatalog/internal/config"
	"github.com/blakestevenson/mediacatalog/internal/db"
	httpserver "github.com/blakestevenson/mediacatalog/internal/http"
	"github.com/blakestevenson/mediacatalog/internal/media"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port int

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Override port from flag if provided
	if port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logger.Info("Starting media catalog server",
		zap.String("environment", cfg.Environment),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("database", cfg.UsesDatabase()),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	mediaService := media.NewService(store, logger)
	if cfg.Catalog.SeedDemoData {
		if err := mediaService.SeedDemoData(ctx, cfg.Catalog.OwnerID); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	router := httpserver.NewRouter(mediaService, httpserver.RouterConfig{
		AllowedContentTypes: cfg.Server.AllowedContentTypes,
		MaxBodyBytes:        cfg.Server.MaxBodyBytes,
		CORSOrigin:          cfg.Server.CORSOrigin,
		OwnerID:             cfg.Catalog.OwnerID,
	}, logger)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until a signal or error is received
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Error("Failed to close server", zap.Error(err))
			}
		}

		logger.Info("Server stopped")
	}

	return nil
}

// openStore picks PostgreSQL when a database url is configured and the
// in-memory store otherwise. The returned func releases the store.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (media.Store, func(), error) {
	if !cfg.UsesDatabase() {
		logger.Warn("no database configured, using in-memory store")
		return media.NewMemoryStore(), func() {}, nil
	}

	pool, err := db.Connect(ctx, cfg.Database.URL, db.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}

	sqlDB := db.OpenSQL(pool)
	closeFn := func() {
		_ = sqlDB.Close()
		pool.Close()
	}
	return db.NewMediaStore(sqlDB), closeFn, nil
}
