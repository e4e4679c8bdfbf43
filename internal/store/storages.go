package store

import (
	"context"
	"fmt"

	"github.com/globalsight/sar-drone-client/internal/config"
	"github.com/globalsight/sar-drone-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the session layer. Currently it holds only
// [SessionRecordRepository]; additional repositories can be added here as the
// feature set grows (e.g. an offline cache of history pages).
type ClientStorages struct {
	// SessionRepository is the SQLite-backed key-value record that keeps
	// the bearer token and serialized user profile across restarts.
	SessionRepository SessionRecordRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionRecordRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRecordRepository(db, logger),
	}, nil
}
