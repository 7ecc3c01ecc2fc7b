package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"forgescan/report-importer/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept report events over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, log, a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer log.Sync()
		defer a.Close()

		srv := &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      api.New(a.Dispatcher, a.Reader, log).Routes(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Minute,
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()
		log.Infow("report importer listening", "addr", cfg.ListenAddr)

		select {
		case <-ctx.Done():
			log.Infow("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Errorw("server error", "error", err)
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
