package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// Error is a backend-reported failure: the HTTP status plus the message the
// backend put in its error envelope. The message is shown to the user
// verbatim when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps the auth-related statuses onto the domain sentinels so callers
// can classify with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return nil
	}
}

// newError builds an *Error from a non-2xx response body. The backend
// reports failures as {"message": "..."}; a bare {"error": "..."} envelope is
// accepted too, and anything else falls back to a generic string.
func newError(status int, body []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Err != "" {
			msg = envelope.Err
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
		if msg == "" {
			msg = "request failed"
		}
	}
	return &Error{Status: status, Message: msg}
}

// IsUnauthorized reports whether err is a backend rejection of the session's
// credentials. Pages treat it as session expiry: force a logout and redirect
// to login.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrSessionExpired)
}

// Message extracts a human-readable message from any error coming out of the
// client, preferring the backend's own wording.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}
