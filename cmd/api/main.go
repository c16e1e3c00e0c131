package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coachstack/coachstack/internal/app"
	"github.com/coachstack/coachstack/internal/config"
	"github.com/coachstack/coachstack/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	runErr := a.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Close(closeCtx); err != nil {
		logger.Error("close app", "error", err)
	}

	if runErr != nil {
		logger.Error("app stopped with error", "error", runErr)
		os.Exit(1)
	}
	logger.Info("app stopped")
}
