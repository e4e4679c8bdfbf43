package store

import (
	"database/sql"

	"github.com/globalsight/sar-drone-client/internal/logger"
	"github.com/globalsight/sar-drone-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
