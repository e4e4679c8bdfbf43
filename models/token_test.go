package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTokenWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// TestToken_ExpiresAt_ReadsClaimWithoutKey verifies that the expiry is read
// from the unverified claims.
func TestToken_ExpiresAt_ReadsClaimWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := Token{SignedString: signedTokenWithExpiry(t, exp)}

	assert.WithinDuration(t, exp, tok.ExpiresAt(), time.Second)
}

// TestToken_Expired distinguishes expired, live, and opaque tokens.
func TestToken_Expired(t *testing.T) {
	expired := Token{SignedString: signedTokenWithExpiry(t, time.Now().Add(-time.Minute))}
	assert.True(t, expired.Expired())

	live := Token{SignedString: signedTokenWithExpiry(t, time.Now().Add(time.Hour))}
	assert.False(t, live.Expired())

	// Opaque tokens are the server's problem, never locally expired.
	opaque := Token{SignedString: "not-a-jwt"}
	assert.False(t, opaque.Expired())
	assert.True(t, opaque.ExpiresAt().IsZero())

	empty := Token{}
	assert.False(t, empty.Expired())
}

// TestUserProfile_Valid verifies the username+email invariant.
func TestUserProfile_Valid(t *testing.T) {
	assert.True(t, UserProfile{Username: "alice", Email: "a@x.com"}.Valid())
	assert.False(t, UserProfile{Username: "alice"}.Valid())
	assert.False(t, UserProfile{Email: "a@x.com"}.Valid())
	assert.False(t, UserProfile{}.Valid())
}

// TestUserProfile_HasRole verifies role lookup.
func TestUserProfile_HasRole(t *testing.T) {
	p := UserProfile{Roles: []string{"USER", "ROLE_ADMIN"}}
	assert.True(t, p.HasRole("ROLE_ADMIN"))
	assert.False(t, p.HasRole("AUDITOR"))
	assert.False(t, UserProfile{}.HasRole("USER"))
}

// TestAuthResponse_Profile verifies the profile extraction from the flattened
// login payload.
func TestAuthResponse_Profile(t *testing.T) {
	auth := AuthResponse{
		Token:    "t1",
		UserID:   7,
		Username: "alice",
		Email:    "a@x.com",
		Roles:    []string{"USER"},
	}

	profile := auth.Profile()
	assert.Equal(t, UserProfile{
		UserID:   7,
		Username: "alice",
		Email:    "a@x.com",
		Roles:    []string{"USER"},
	}, profile)
}
