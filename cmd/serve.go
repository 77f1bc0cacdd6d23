package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"next-target-mock/internal/metrics"
	"next-target-mock/internal/routes"
	"next-target-mock/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			log.Warn("failed to close store", zap.Error(err))
		}
	}()

	m := metrics.New()
	app := routes.NewApp(routes.Deps{
		Service: services.NewManpowerService(store, log, m),
		Config:  cfg,
		Logger:  log,
		Metrics: m,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Next-Target Mock API listening",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.Store.Driver),
		)
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	}
}
