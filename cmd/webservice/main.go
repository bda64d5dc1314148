package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/point-of-sales/gaming-store-service/config"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	server := app.App{
		Config: config,
	}

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start gaming store service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down")
	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down cleanly")
	}
}
