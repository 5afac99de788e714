package ports

import "github.com/craftlink/craftlink/internal/core/domain"

// SessionStore is the persisted source of "who is logged in", shared by every
// page. Implementations must persist a mutation durably before notifying
// subscribers, and must deliver exactly one notification per mutation.
type SessionStore interface {
	// Current returns the session as last persisted. Safe to call at any
	// time; never blocks on I/O beyond the initial load.
	Current() domain.Session

	// SetSession replaces both keyed values (token and cached user) and
	// notifies subscribers.
	SetSession(token string, user *domain.User) error

	// UpdateUser merges a partial update into the cached user record,
	// re-persists, and notifies subscribers. A no-op when no user is cached.
	UpdateUser(patch domain.UserPatch) error

	// Clear removes the token and the cached user together (logout).
	Clear() error

	// OnChange registers a listener for session mutations, including those
	// made by other processes sharing the session file. The returned func
	// unsubscribes.
	OnChange(fn func(domain.Session)) (unsubscribe func())
}
