// Package main is the entry point for the Church Ledger API server.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/church-ledger/backend/config"
)

var rootCmd = &cobra.Command{
	Use:   "church-ledger",
	Short: "Church Ledger API",
	Long: `Church Ledger records collections and expenses, splits collections into
church funds and compares spending against the yearly budget plan.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if it exists (development only)
		_ = godotenv.Load()

		// Initialize structured logger
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration after the .env file has been applied.
func loadConfig() *config.Config {
	return config.Load()
}
