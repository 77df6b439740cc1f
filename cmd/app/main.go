package main

import (
	"os"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"

	_ "frontdesk/docs"
)

// @title Frontdesk API
// @version 1.0
// @description Hotel occupancy dashboard, stay conflict checks, walk-in bookings, room transfers and reservation maintenance.
// @BasePath /
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.UseOutput(cfg, os.Stdout)

	if cfg.DB.Postgres.AutoMigrate && cfg.Store.Driver == config.StoreDriverPostgres {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
