package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/marketplace/internal/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Marketplace API
//	@version		1.0
//	@description	Jobs, marketplace listings, event tickets and a mobile money wallet.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	// zap is configured from the config, so anything failing before that
	// goes to stderr through zerolog.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Error().Err(err).Msg("marketplace stopped")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	marketplace := app.New()
	if err := marketplace.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if err := marketplace.Wait(ctx, stop); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.L().Info("marketplace stopped cleanly")
	return nil
}
