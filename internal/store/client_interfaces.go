package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_record_mock.go -package=mock

// Well-known keys of the local session record. The record is a plain
// key-value store; these two entries together form the persisted session.
const (
	// KeyToken holds the opaque bearer token string.
	KeyToken = "token"
	// KeyUser holds the serialized user profile JSON.
	KeyUser = "user"
)

// SessionRecordRepository is the durable key-value store that survives
// process restarts. Entries are written and deleted independently — there is
// no transactional grouping across keys; the session layer tolerates and
// self-heals partial state on bootstrap.
type SessionRecordRepository interface {
	// Save upserts value under key.
	Save(ctx context.Context, key, value string) error

	// Load returns the value stored under key, or
	// [ErrSessionRecordNotFound] if the entry does not exist.
	Load(ctx context.Context, key string) (string, error)

	// Delete removes the entry under key. Deleting a missing entry is not
	// an error.
	Delete(ctx context.Context, key string) error
}
