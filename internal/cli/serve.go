package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/gridiron-ical/internal/config"
	"github.com/pfrederiksen/gridiron-ical/internal/logger"
	"github.com/pfrederiksen/gridiron-ical/internal/scheduler"
	"github.com/pfrederiksen/gridiron-ical/internal/server"
	"github.com/pfrederiksen/gridiron-ical/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar feed and refresh the schedule daily",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return err
	}

	cycle := NewCycle(cfg, store, newOrchestrator(cfg))
	sched := scheduler.New(cfg.RefreshHour, cycle)
	srv := server.New(cfg.ListenAddr, store, cfg.Team)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sched.Start(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
