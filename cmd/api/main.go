package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asilbek-0311/arc-omnichan-yield/config"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/app"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("ARCY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Arc omnichain yield node")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	node, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build node")
	}
	defer node.Close()

	if err := node.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Node stopped with error")
		return
	}
	log.Info().Msg("Server exited")
}
