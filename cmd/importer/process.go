package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"forgescan/report-importer/internal/model"
)

var (
	eventFile      string
	processTimeout time.Duration
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process one report event read from a file or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := readEvent(eventFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if processTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, processTimeout)
			defer cancel()
		}

		_, log, a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer log.Sync()
		defer a.Close()

		if err := a.Dispatcher.Handle(ctx, ev); err != nil {
			log.Errorw("event processing failed", "error", err)
			return err
		}
		return nil
	},
}

func readEvent(path string) (model.ReportEvent, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.ReportEvent{}, err
		}
		defer f.Close()
		r = f
	}
	var ev model.ReportEvent
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return ev, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}

func init() {
	processCmd.Flags().StringVarP(&eventFile, "file", "f", "-", "Event JSON file, - for stdin")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 0, "Abort processing after this duration (0 disables)")
	rootCmd.AddCommand(processCmd)
}
