package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/globalsight/sar-drone-client/internal/adapter"
	"github.com/globalsight/sar-drone-client/internal/logger"
	"github.com/globalsight/sar-drone-client/internal/store"
	"github.com/globalsight/sar-drone-client/models"
)

// Session is a snapshot of the authentication state. Token and User are set
// and cleared together; callers should only act on a snapshot once Loading
// is false.
type Session struct {
	Token   string
	User    *models.UserProfile
	Loading bool
}

// Authenticated reports whether the snapshot represents a logged-in user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// TokenExpired reports whether the held token carries an expiry claim that
// already passed. Opaque tokens are never considered locally expired.
func (s Session) TokenExpired() bool {
	return models.Token{SignedString: s.Token}.Expired()
}

// Store is the single source of truth for "is the user authenticated, and as
// whom". It owns the in-memory session, the adapter's bearer token, and the
// durable session record.
//
// The mutex guards field access only; operations themselves are not mutually
// exclusive (the UI invokes them sequentially, last writer wins).
type Store struct {
	serverAdapter adapter.ServerAdapter
	records       store.SessionRecordRepository
	logger        *logger.Logger

	mu      sync.RWMutex
	session Session
}

// NewStore constructs a session store in the pre-bootstrap state:
// unauthenticated with Loading true until [Store.Bootstrap] completes.
func NewStore(records store.SessionRecordRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Store {
	return &Store{
		serverAdapter: serverAdapter,
		records:       records,
		logger:        logger,
		session:       Session{Loading: true},
	}
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Login authenticates against the backend. On success the response must
// contain token, username, and email; the session is set and both entries of
// the durable record are written. On any failure — transport, server error,
// or missing required fields — the session is reset to unauthenticated and
// the error is returned for the caller to display.
//
// The raw auth payload is returned unmodified so screens can read optional
// fields the session does not track.
func (s *Store) Login(ctx context.Context, username, password string) (models.AuthResponse, error) {
	s.setLoading(true)

	auth, err := s.serverAdapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		s.reset()
		return models.AuthResponse{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	if auth.Token == "" || auth.Username == "" || auth.Email == "" {
		s.logger.Warn().
			Str("username", username).
			Msg("login response missing token/username/email")
		s.reset()
		return models.AuthResponse{}, ErrIncompleteAuthResponse
	}

	profile := auth.Profile()
	s.adopt(auth.Token, &profile)
	s.persist(ctx, auth.Token, profile)

	return auth, nil
}

// Register creates an account. The session is not mutated on success; the
// caller decides the next step (typically navigating to the login screen).
func (s *Store) Register(ctx context.Context, reg models.Registration) (models.UserProfile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.serverAdapter.Register(ctx, reg)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return created, nil
}

// Logout ends the session. The remote call is best-effort: its failure is
// logged and never blocks local cleanup. The in-memory session and both
// durable record entries always end cleared; record deletion failures are
// logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	s.setLoading(true)

	if err := s.serverAdapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
	}

	s.reset()
	s.clearRecord(ctx, store.KeyToken, store.KeyUser)
}

// Bootstrap restores a prior session from the durable record. Invoked once
// at process start.
//
// A stored token is adopted as-is; the stored user JSON must parse and carry
// username and email. An invalid profile deletes the user entry; unreadable
// or unparseable data deletes both entries. Corruption is logged and
// self-healed, never surfaced — there is no user-facing flow at startup to
// report it to. Always terminates with Loading false.
func (s *Store) Bootstrap(ctx context.Context) {
	defer s.setLoading(false)

	token, err := s.records.Load(ctx, store.KeyToken)
	if err != nil && !errors.Is(err, store.ErrSessionRecordNotFound) {
		s.logger.Error().Err(err).Msg("bootstrap: failed to read stored token, clearing record")
		s.reset()
		s.clearRecord(ctx, store.KeyToken, store.KeyUser)
		return
	}

	// Transient: the token is adopted before the profile is validated.
	// Resolved below, before Loading flips to false.
	if token != "" {
		s.adopt(token, nil)
	}

	userJSON, err := s.records.Load(ctx, store.KeyUser)
	if err != nil {
		if !errors.Is(err, store.ErrSessionRecordNotFound) {
			s.logger.Error().Err(err).Msg("bootstrap: failed to read stored user, clearing record")
			s.clearRecord(ctx, store.KeyToken, store.KeyUser)
		}
		s.reset()
		return
	}

	var profile models.UserProfile
	if err = json.Unmarshal([]byte(userJSON), &profile); err != nil {
		s.logger.Error().Err(err).Msg("bootstrap: stored user record is corrupt, clearing record")
		s.reset()
		s.clearRecord(ctx, store.KeyToken, store.KeyUser)
		return
	}

	if !profile.Valid() {
		s.logger.Warn().Msg("bootstrap: stored user record is incomplete, discarding")
		s.reset()
		s.clearRecord(ctx, store.KeyUser)
		return
	}

	if token == "" {
		// Profile without a token cannot authenticate anything.
		s.reset()
		return
	}

	s.adopt(token, &profile)

	if (models.Token{SignedString: token}).Expired() {
		s.logger.Warn().
			Str("username", profile.Username).
			Msg("bootstrap: restored token is already expired, expecting a 401 on first use")
	}
	s.logger.Info().
		Str("username", profile.Username).
		Msg("bootstrap: session restored")
}

// adopt installs token (and optionally user) into the in-memory session and
// the adapter. A nil user marks the bootstrap transient.
func (s *Store) adopt(token string, user *models.UserProfile) {
	s.serverAdapter.SetToken(token)

	s.mu.Lock()
	s.session.Token = token
	s.session.User = user
	s.session.Loading = false
	s.mu.Unlock()
}

// reset clears the in-memory session and the adapter token. The durable
// record is untouched; callers clear it separately when required.
func (s *Store) reset() {
	s.serverAdapter.SetToken("")

	s.mu.Lock()
	s.session = Session{}
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.session.Loading = v
	s.mu.Unlock()
}

// persist writes both record entries. Failures are logged only: durable
// state is best-effort and never corrupts the in-memory session.
func (s *Store) persist(ctx context.Context, token string, profile models.UserProfile) {
	if err := s.records.Save(ctx, store.KeyToken, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session token")
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to serialize user profile")
		return
	}
	if err = s.records.Save(ctx, store.KeyUser, string(payload)); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist user profile")
	}
}

func (s *Store) clearRecord(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.records.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to delete session record entry")
		}
	}
}
