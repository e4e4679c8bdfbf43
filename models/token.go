package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the opaque bearer credential returned by the backend with
// convenience accessors for client-side inspection.
//
// The client never verifies the signature (it has no key); claims are parsed
// unverified purely to read the expiry so the UI can warn about a restored
// session that is already stale instead of waiting for the first 401.
type Token struct {
	// SignedString is the compact serialized form transmitted in the
	// Authorization header and stored in the local session record.
	SignedString string
}

// String returns the compact serialized token. It implements [fmt.Stringer].
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the "exp" claim of the token, or the zero time if the
// token is not a parseable JWT or carries no expiry. Claims are read without
// signature verification.
func (t Token) ExpiresAt() time.Time {
	parser := jwt.NewParser()

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(t.SignedString, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// Expired reports whether the token carries an expiry claim that lies in the
// past. An opaque or claim-less token is never considered expired locally;
// the server remains the authority via 401 responses.
func (t Token) Expired() bool {
	exp := t.ExpiresAt()
	return !exp.IsZero() && exp.Before(time.Now())
}
