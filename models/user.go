package models

// UserProfile is the client-side view of an authenticated SAR-Drone account.
// It is populated from the login response and from the locally persisted
// session record.
type UserProfile struct {
	// UserID is the backend identifier of the account.
	UserID int64 `json:"userId"`

	// Username is the unique login name. Required for the profile to be
	// considered valid.
	Username string `json:"username"`

	// Email is the account e-mail address. Required for the profile to be
	// considered valid.
	Email string `json:"email"`

	// Roles holds the role names granted to the account
	// (e.g. "USER", "ROLE_ADMIN"). Elevated roles unlock history CRUD.
	Roles []string `json:"roles"`
}

// Valid reports whether the profile carries the two fields every
// authenticated flow depends on. Profiles failing this check are discarded.
func (u UserProfile) Valid() bool {
	return u.Username != "" && u.Email != ""
}

// HasRole reports whether role is present in the profile's role set.
func (u UserProfile) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Credentials is the login request body for POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the request body for POST /auth/register.
type Registration struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	CompleteName string `json:"completeName"`
}

// AuthResponse is the payload returned by POST /auth/login. Token plus the
// profile fields arrive flattened in a single object.
type AuthResponse struct {
	Token    string   `json:"token"`
	UserID   int64    `json:"userId"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// Profile extracts the user-profile portion of the auth response.
func (a AuthResponse) Profile() UserProfile {
	return UserProfile{
		UserID:   a.UserID,
		Username: a.Username,
		Email:    a.Email,
		Roles:    a.Roles,
	}
}
