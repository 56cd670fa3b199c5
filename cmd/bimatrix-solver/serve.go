package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/bimatrix-solver/internal/logging"
	"github.com/iwvelando/bimatrix-solver/internal/server"
	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		address, _ := cmd.Flags().GetString("address")
		logLevel, _ := cmd.Flags().GetString("log-level")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, configLocation, address, logLevel)
	},
}

func init() {
	serveCmd.Flags().String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().String("address", "", "listen address override")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, configLocation, addressOverride, logLevel string) error {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		return fmt.Errorf("failed to load server configuration at %s: %w", configLocation, err)
	}
	if addressOverride != "" {
		cfg.Address = addressOverride
	}

	logger, err := logging.New(cfg.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg.RequestSizeBytes(), version, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.runServe"),
			zap.String("address", cfg.Address),
			zap.Int64("maxRequestSize", cfg.RequestSizeBytes()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "main.runServe"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeoutSeconds*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
