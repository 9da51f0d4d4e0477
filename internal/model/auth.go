package model

import "time"

// PasswordHasher produces and verifies one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// RegisterParams carries validated registration input.
type RegisterParams struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// LoginResult is what a successful login hands back to the transport layer:
// the access token for the response body and the refresh token plus its
// expiry for the cookie.
type LoginResult struct {
	User             User
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}
