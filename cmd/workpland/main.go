package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"workplan-dashboard/internal/config"
	"workplan-dashboard/internal/repository"
	"workplan-dashboard/internal/server"
	"workplan-dashboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	repo := repository.Connect(cfg.DatabaseURL, logger)
	defer repo.Close()

	source := "memory"
	if repo.Available() {
		source = cfg.DatabaseURL
	}
	workplan := service.NewWorkplanService(ctx, repo, source, logger)

	srv := server.New(cfg.ListenAddr, workplan, cfg.SnapshotPath, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("shutdown complete")
}
