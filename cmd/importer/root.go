package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"forgescan/report-importer/internal/app"
	"forgescan/report-importer/internal/config"
	"forgescan/report-importer/internal/logging"
)

var (
	configPath string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:           "importer",
	Short:         "Normalize code scan reports and import them as security findings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (default $IMPORTER_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// setup loads config, builds the logger and wires the importer.
func setup(ctx context.Context) (config.Config, *zap.SugaredLogger, *app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := logging.New(debugMode || cfg.Debug)
	if err != nil {
		return cfg, nil, nil, err
	}
	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Errorw("startup failed", "error", err)
		_ = log.Sync()
		return cfg, nil, nil, err
	}
	return cfg, log, a, nil
}
