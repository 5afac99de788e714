// Package session persists the login state (token + cached user) to a single
// JSON file. Writes are atomic (temp file + rename) so no reader ever
// observes a half-written value, and every mutation is broadcast on an
// in-process event bus after it has been durably persisted.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	evbus "github.com/asaskevich/EventBus"
	"github.com/rs/zerolog"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// topicChanged is the bus topic carrying the full session after a mutation.
const topicChanged = "session.changed"

// Store is a file-backed ports.SessionStore.
type Store struct {
	path   string
	bus    evbus.Bus
	logger zerolog.Logger

	mu      sync.RWMutex
	current domain.Session

	// Subscribers are keyed by id so each one can be removed individually;
	// the bus identifies handlers by code pointer, which cannot tell two
	// registrations of the same function apart.
	subMu  sync.Mutex
	subs   map[uint64]func(domain.Session)
	nextID uint64
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore opens (or lazily creates) the session file at path. A missing
// file means an anonymous session; a corrupt file is discarded with a
// warning rather than blocking startup.
func NewStore(path string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	s := &Store{
		path:   path,
		bus:    evbus.New(),
		logger: logger,
		subs:   make(map[uint64]func(domain.Session)),
	}
	if err := s.bus.Subscribe(topicChanged, s.fanOut); err != nil {
		return nil, fmt.Errorf("subscribe session topic: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run, anonymous
	case err != nil:
		return nil, fmt.Errorf("read session file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.current); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("discarding corrupt session file")
			s.current = domain.Session{}
		}
	}

	return s, nil
}

// Current returns the session as last persisted.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetSession replaces the token and cached user, persists, then notifies.
func (s *Store) SetSession(token string, user *domain.User) error {
	next := domain.Session{Token: token, User: user}
	if err := s.commit(next); err != nil {
		return err
	}
	s.publish(next)
	return nil
}

// UpdateUser merges the patch into the cached user and re-persists. It is a
// no-op when no user is cached: there is nothing to patch before login.
func (s *Store) UpdateUser(patch domain.UserPatch) error {
	s.mu.Lock()
	if s.current.User == nil {
		s.mu.Unlock()
		return nil
	}
	next := domain.Session{Token: s.current.Token, User: patch.Apply(s.current.User)}
	if err := s.persistLocked(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = next
	s.mu.Unlock()

	s.publish(next)
	return nil
}

// Clear removes the token and cached user together (logout).
func (s *Store) Clear() error {
	s.mu.Lock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.mu.Unlock()
		return fmt.Errorf("remove session file: %w", err)
	}
	s.current = domain.Session{}
	s.mu.Unlock()

	s.publish(domain.Session{})
	return nil
}

// OnChange subscribes to session mutations. Handlers run synchronously, one
// invocation per mutation, always after the new state is on disk.
// Unsubscribing removes only that subscription; other listeners keep firing.
func (s *Store) OnChange(fn func(domain.Session)) func() {
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// fanOut is the single bus handler; it delivers one event to every
// registered subscriber.
func (s *Store) fanOut(sess domain.Session) {
	s.subMu.Lock()
	fns := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

// Reload re-reads the session file after another process changed it and
// notifies subscribers when the content actually differs. Self-inflicted
// watcher events are filtered out by the comparison.
func (s *Store) Reload() error {
	s.mu.Lock()

	var next domain.Session
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// cleared by another process
	case err != nil:
		s.mu.Unlock()
		return fmt.Errorf("reload session file: %w", err)
	default:
		if err := json.Unmarshal(data, &next); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("reload session file: %w", err)
		}
	}

	if sessionsEqual(s.current, next) {
		s.mu.Unlock()
		return nil
	}
	s.current = next
	s.mu.Unlock()

	s.logger.Debug().Msg("session reloaded from disk")
	s.publish(next)
	return nil
}

// Path returns the file the store persists to; the watcher observes it.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) commit(next domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

// persistLocked writes next atomically. Callers hold s.mu.
func (s *Store) persistLocked(next domain.Session) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *Store) publish(sess domain.Session) {
	s.bus.Publish(topicChanged, sess)
}

func sessionsEqual(a, b domain.Session) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
