package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"autocare/config"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	"autocare/internal/notifier"
	"autocare/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := otel.New(cfg)
	client := kafka.New(cfg)

	notifier.New(client, notifier.LogSender{}, cfg, tracer).Run(ctx)

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := tracer.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Notifier stopped")
}
