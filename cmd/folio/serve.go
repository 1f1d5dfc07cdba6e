package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

var staticDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		app := folio.New(cfg, folio.WithStaticDir(staticDir))
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- app.Start() }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("content", "", "content directory (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload content when files change")
	serveCmd.Flags().StringVar(&staticDir, "static", "public", "static files directory")
}
