package database

import (
	"frontdesk/config"
	"frontdesk/infras/postgres"
	"frontdesk/infras/sqlite"
	"frontdesk/shared/repository"

	"github.com/rs/zerolog/log"
)

// New opens the connection for the configured store driver. The memory driver needs none.
func New(cfg *config.Config) *repository.Connection {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres, "":
		return postgres.New(cfg)
	case config.StoreDriverSQLite:
		return sqlite.New(cfg)
	case config.StoreDriverMemory:
		log.Warn().Msg("Using in-memory record store, data is lost on restart")

		return nil
	}

	log.Fatal().Str("driver", cfg.Store.Driver).Msg("Unknown store driver")

	return nil
}
