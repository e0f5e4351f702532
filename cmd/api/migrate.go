package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/church-ledger/backend/internal/infra/db"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the ledger tables and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig()

		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.AutoMigrate(); err != nil {
			return err
		}

		slog.Info("Database migrations completed successfully", "driver", cfg.Database.Driver)
		return nil
	},
}
