package session

import "errors"

var (
	// ErrLoginOnServer wraps any transport or server failure during login.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrRegisterOnServer wraps any transport or server failure during
	// registration.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrIncompleteAuthResponse is returned when a 2xx login response lacks
	// one of the required fields (token, username, email). The session is
	// reset to unauthenticated before this error is returned.
	ErrIncompleteAuthResponse = errors.New("login response missing required fields")
)
