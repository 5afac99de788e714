package domain

import "errors"

var (
	// ErrSessionExpired marks a token the backend rejected as unauthorized.
	// Pages react by clearing the session and redirecting to login.
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden marks an operation the backend refused for the caller's
	// role.
	ErrForbidden = errors.New("access forbidden")
)
