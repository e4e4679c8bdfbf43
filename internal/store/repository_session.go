package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/globalsight/sar-drone-client/internal/logger"
)

type sessionRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRecordRepository(db *DB, logger *logger.Logger) SessionRecordRepository {
	return &sessionRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRecordRepository) Save(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveSessionEntry, key, value)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRecordRepository.Save").
			Str("key", key).
			Msg("failed to execute upsert for session record entry")
		return fmt.Errorf("%w: save session entry %q: %v", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *sessionRecordRepository) Load(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, loadSessionEntry, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionRecordNotFound
		}
		log.Err(err).
			Str("func", "sessionRecordRepository.Load").
			Str("key", key).
			Msg("failed to load session record entry")
		return "", fmt.Errorf("%w: load session entry %q: %v", ErrScanningRow, key, err)
	}

	return value, nil
}

func (r *sessionRecordRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteSessionEntry, key)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRecordRepository.Delete").
			Str("key", key).
			Msg("failed to delete session record entry")
		return fmt.Errorf("%w: delete session entry %q: %v", ErrExecutingStatement, key, err)
	}

	return nil
}
