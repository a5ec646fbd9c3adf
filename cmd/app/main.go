package main

import (
	"autocare/config"
	"autocare/di"
	"autocare/helper"
	"autocare/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title AutoCare API
// @version 1.0
// @description Car-service booking platform backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
