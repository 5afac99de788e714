package session

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay coalesces the burst of filesystem events a single atomic
// rename produces into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher observes the session file for writes made by other processes and
// triggers a store reload, which in turn notifies subscribers. Two craftlink
// processes sharing a session file see each other's logins and logouts.
type Watcher struct {
	store  *Store
	fsw    *fsnotify.Watcher
	logger zerolog.Logger
}

// NewWatcher watches the directory containing the session file. The
// directory is watched rather than the file itself because atomic renames
// and logouts replace or remove the file.
func NewWatcher(store *Store, logger zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{store: store, fsw: fsw, logger: logger}, nil
}

// Start processes events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	name := filepath.Base(w.store.Path())

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				// Drain a tick that fired before we got here, or Reset
				// would let a stale tick through early.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}

		case <-fire:
			timer = nil
			fire = nil
			if err := w.store.Reload(); err != nil {
				w.logger.Warn().Err(err).Msg("session reload failed")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("session watcher error")
		}
	}
}
