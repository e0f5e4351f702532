package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/church-ledger/backend/internal/application/usecase/auth"
	"github.com/church-ledger/backend/internal/infra/db"
	"github.com/church-ledger/backend/internal/infra/dependency"
)

const (
	shutdownTimeout     = 10 * time.Second
	limiterCleanupEvery = 5 * time.Minute
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("skip-migrate", false, "Start without running database migrations")

	// Running the binary without a subcommand serves.
	rootCmd.RunE = runServe
	rootCmd.Flags().Bool("skip-migrate", false, "Start without running database migrations")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	skipMigrate, _ := cmd.Flags().GetBool("skip-migrate")

	// Load configuration
	cfg := loadConfig()

	slog.Info("Starting Church Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if !skipMigrate {
		if err := database.AutoMigrate(); err != nil {
			return err
		}
		slog.Info("Database migrations completed successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector, err := dependency.NewInjector(ctx, cfg, database.DB())
	if err != nil {
		return err
	}
	defer func() {
		if err := injector.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	if _, err := injector.BootstrapAdmin.Execute(ctx, auth.BootstrapAdminInput{
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
		Name:     cfg.Bootstrap.AdminName,
	}); err != nil {
		return err
	}

	if removed, err := injector.TokenRepository.DeleteExpiredRefreshTokens(ctx, time.Now()); err != nil {
		slog.Warn("Failed to purge expired refresh tokens", "error", err)
	} else if removed > 0 {
		slog.Info("Purged expired refresh tokens", "count", removed)
	}

	go injector.LoginRateLimiter.RunCleanup(limiterCleanupEvery, ctx.Done())

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited properly")
	return nil
}
