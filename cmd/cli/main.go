package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/cli"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/config"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

func main() {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
