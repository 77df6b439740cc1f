package sqlite

//nolint:revive
import (
	"fmt"
	"os"
	"path/filepath"

	"frontdesk/config"
	"frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	driverName = "sqlite"
	dirPerm    = 0o755
)

var schemas = []string{
	`CREATE TABLE IF NOT EXISTS stays (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		room_number INTEGER NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT NOT NULL,
		occupant_name TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		party_size INTEGER NOT NULL DEFAULT 1,
		group_key TEXT NOT NULL DEFAULT '',
		services TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_stays_position ON stays(position);`,
	`CREATE TABLE IF NOT EXISTS consumptions (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		room_number INTEGER NOT NULL,
		amount REAL NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_consumptions_position ON consumptions(position);`,
}

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// New opens the embedded database used by single-node deployments and creates its schema.
// SQLite serializes writers, so a single handle serves both reads and writes.
func New(config *config.Config) *repository.Connection {
	db, err := Open(config.Store.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.Store.SQLitePath).Msg("Failed to open sqlite store")
	}

	log.Info().Str("path", config.Store.SQLitePath).Msg("Opened sqlite store")

	return &repository.Connection{Read: db, Write: db}
}

// Open creates the directory, opens the file and ensures the schema exists.
func Open(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}
