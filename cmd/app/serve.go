package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"orderhub/cmd"
	"orderhub/internal/pkg/logging"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the live channel and the background jobs",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(c *cobra.Command, _ []string) error {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	router, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	background, cancelBackground := context.WithCancel(context.WithoutCancel(ctx))
	waitBackground := app.Run(background)

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", "port", cfg.HTTPPort)
		serverErr <- router.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serverErr:
	case <-ctx.Done():
		logger.InfoContext(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		err = router.Shutdown(shutdownCtx)
		cancel()
	}

	// stopping the writer triggers its final save
	cancelBackground()
	waitBackground()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
