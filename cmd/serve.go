package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a content directory over HTTP",
	Long: `Serves the data/ directory of a local content store so that writeguide
(or any other client) can use it as an http:// source. The directory
defaults to the configured source.

This is a static file host and nothing more: it carries no browser logic,
renders nothing and keeps no state. Navigation, selection and rendering
all happen in the client.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.Source
		if len(args) == 1 {
			dir = args[0]
		}
		if _, err := os.Stat(filepath.Join(dir, content.ManifestFile)); err != nil {
			return fmt.Errorf("%s is not a content directory: %w", dir, err)
		}

		logger, err := newLogger(cfg, "")
		if err != nil {
			return err
		}
		defer logger.Sync()

		port := cfg.Serve.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		srv := server.New(server.Config{
			Port:     port,
			Dir:      dir,
			AllowAll: cfg.Serve.AllowAll || serveAllowAll,
		}, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		fmt.Fprintf(os.Stderr, "writeguide %s serving %s on http://localhost:%d/\n", Version, dir, port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all", false, "allow requests from any origin")
	rootCmd.AddCommand(serveCmd)
}
