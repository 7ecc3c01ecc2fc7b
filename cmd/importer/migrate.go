package main

import (
	"errors"

	"github.com/spf13/cobra"

	"forgescan/report-importer/internal/adapters/postgres"
	"forgescan/report-importer/internal/config"
	"forgescan/report-importer/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the postgres backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		log, err := logging.New(debugMode || cfg.Debug)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := postgres.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		log.Infow("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
