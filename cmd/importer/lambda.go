package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"forgescan/report-importer/internal/model"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function handler",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		lambda.Start(func(ctx context.Context, ev model.ReportEvent) error {
			log.Infow("starting function", "report_type", ev.ReportType, "build_id", ev.BuildID)
			if err := a.Dispatcher.Handle(ctx, ev); err != nil {
				log.Errorw("event processing failed", "error", err)
				_ = log.Sync()
				return err
			}
			return nil
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}
