package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LavenderBridge/jazzdrill/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the drills over an HTTP JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		handler := api.NewHandler(engine, logger.Named("api"))
		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewRouter(handler, cfg.Server.AllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", addr), zap.String("profile", cfg.Profile))
			errCh <- srv.ListenAndServe()
		}()
		fmt.Printf("🎷 Serving jazzdrill on http://%s/api/v1\n", addr)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}
