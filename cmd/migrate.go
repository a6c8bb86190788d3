package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/quill-server/database"
	"github.com/dtroode/quill-server/internal/config"
	"github.com/dtroode/quill-server/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			logger := logger.New(cfg.LogLevel)

			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}
