package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"github.com/Ihsas01/SR-SHOPPING/internal/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if config.Environment == "development" {
		logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	application := app.App{Config: config}
	if err := application.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := application.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop cleanly")
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
