package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalsight/sar-drone-client/internal/logger"
)

func newTestSessionRepo(t *testing.T) (*sessionRecordRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRecordRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSessionRepository_Save_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session_record").
		WithArgs(KeyToken, "t1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), KeyToken, "t1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session_record").
		WithArgs(KeyToken, "t1").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), KeyToken, "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSessionRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"username":"alice"}`)
	mock.ExpectQuery("SELECT value").
		WithArgs(KeyUser).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background(), KeyUser)

	require.NoError(t, err)
	assert.Equal(t, `{"username":"alice"}`, got)
}

func TestSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(KeyToken).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background(), KeyToken)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionRecordNotFound)
}

func TestSessionRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session_record").
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), KeyUser)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_MissingEntryIsNoError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session_record").
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), KeyUser)

	require.NoError(t, err)
}
