package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hexquantity/internal/adapters/restapi"
	"hexquantity/internal/logger"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the decoder over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, appLogger, service, err := buildService(*configFile, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			appLogger.Info("Configuration loaded successfully", "port", cfg.Server.Port)

			apiServer, err := restapi.NewServer(service, appLogger, &cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to create API server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runUntilDone(ctx, appLogger, apiServer); err != nil {
				return err
			}
			appLogger.Info("Application shut down gracefully.")
			return nil
		},
	}
}

// runUntilDone starts the server and shuts it down when ctx is done or the server fails.
func runUntilDone(ctx context.Context, appLogger logger.AppLogger, apiServer *restapi.Server) error {
	errChan := make(chan error, 1)
	go func() {
		if errServ := apiServer.Start(); errServ != nil && !errors.Is(errServ, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", errServ)
		}
	}()

	var runErr error
	select {
	case runErr = <-errChan:
		appLogger.Error("Shutting down due to error", "error", runErr)
	case <-ctx.Done():
		appLogger.Info("Shutting down due to OS signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("http server shutdown error: %w", err)
	}
	return runErr
}
