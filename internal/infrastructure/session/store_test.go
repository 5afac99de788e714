package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/craftlink/craftlink/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func testUser() *domain.User {
	return &domain.User{
		ID:         "u1",
		Name:       "Cleo",
		Email:      "cleo@example.com",
		Role:       domain.RoleClient,
		IsVerified: true,
		Subscription: &domain.Subscription{
			Plan:             "basic-monthly",
			Status:           domain.SubscriptionActive,
			UnlockedContacts: 5,
		},
	}
}

func TestSetSessionPersistsBeforeNotifying(t *testing.T) {
	store := newTestStore(t)

	notified := 0
	unsubscribe := store.OnChange(func(sess domain.Session) {
		notified++
		// The new state must already be on disk when the handler runs.
		data, err := os.ReadFile(store.Path())
		if err != nil {
			t.Fatalf("read during notification: %v", err)
		}
		var onDisk domain.Session
		if err := json.Unmarshal(data, &onDisk); err != nil {
			t.Fatalf("decode during notification: %v", err)
		}
		if onDisk.Token != "tok-1" {
			t.Errorf("on-disk token = %q, want tok-1", onDisk.Token)
		}
		if sess.Token != "tok-1" {
			t.Errorf("notified token = %q, want tok-1", sess.Token)
		}
	})
	defer unsubscribe()

	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if notified != 1 {
		t.Fatalf("notifications = %d, want exactly 1", notified)
	}
}

func TestUpdateUserMergesInsteadOfReplacing(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}

	remaining := 4
	if err := store.UpdateUser(domain.UserPatch{UnlockedContacts: &remaining}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got := store.Current()
	if got.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1 untouched", got.Token)
	}
	if got.User.Name != "Cleo" || got.User.Email != "cleo@example.com" {
		t.Errorf("unpatched fields changed: %+v", got.User)
	}
	if got.User.UnlockedContacts() != 4 {
		t.Errorf("credits = %d, want 4", got.User.UnlockedContacts())
	}
	if got.User.Subscription.Plan != "basic-monthly" {
		t.Errorf("subscription plan lost in merge: %+v", got.User.Subscription)
	}
}

func TestUpdateUserBeforeLoginIsNoOp(t *testing.T) {
	store := newTestStore(t)
	notified := 0
	defer store.OnChange(func(domain.Session) { notified++ })()

	name := "Nobody"
	if err := store.UpdateUser(domain.UserPatch{Name: &name}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if notified != 0 {
		t.Errorf("notifications = %d, want 0 for pre-login patch", notified)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("session file created by a no-op patch")
	}
}

func TestClearRemovesFileAndNotifiesAnonymous(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}

	var last domain.Session
	notified := 0
	defer store.OnChange(func(sess domain.Session) {
		notified++
		last = sess
	})()

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if notified != 1 {
		t.Fatalf("notifications = %d, want 1", notified)
	}
	if last.Authenticated() || last.User != nil {
		t.Errorf("notified session not anonymous: %+v", last)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("session file still present after clear")
	}
}

func TestUnsubscribeRemovesOnlyThatSubscriber(t *testing.T) {
	store := newTestStore(t)

	aCalls, bCalls := 0, 0
	unsubA := store.OnChange(func(domain.Session) { aCalls++ })
	unsubB := store.OnChange(func(domain.Session) { bCalls++ })
	defer unsubA()

	// Removing the later registration must not detach the earlier one.
	unsubB()

	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if aCalls != 1 {
		t.Errorf("subscriber A calls = %d, want 1", aCalls)
	}
	if bCalls != 0 {
		t.Errorf("subscriber B calls = %d, want 0 after unsubscribe", bCalls)
	}
}

func TestEachSubscriberNotifiedExactlyOncePerMutation(t *testing.T) {
	store := newTestStore(t)

	counts := make([]int, 3)
	for i := range counts {
		defer store.OnChange(func(domain.Session) { counts[i]++ })()
	}

	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}
	for i, n := range counts {
		if n != 1 {
			t.Errorf("subscriber %d calls = %d, want 1", i, n)
		}
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	store := newTestStore(t)
	notified := 0
	unsubscribe := store.OnChange(func(domain.Session) { notified++ })

	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}
	unsubscribe()
	if err := store.SetSession("tok-2", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}

	if notified != 1 {
		t.Errorf("notifications = %d, want 1 after unsubscribe", notified)
	}
}

func TestReloadPicksUpForeignWrite(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}

	// Another process replaces the file with a different session.
	foreign := domain.Session{Token: "tok-foreign", User: testUser()}
	data, err := json.Marshal(foreign)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), data, 0o600); err != nil {
		t.Fatal(err)
	}

	notified := 0
	defer store.OnChange(func(domain.Session) { notified++ })()

	if err := store.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if notified != 1 {
		t.Fatalf("notifications = %d, want 1 for a foreign write", notified)
	}
	if got := store.Current().Token; got != "tok-foreign" {
		t.Errorf("token = %q, want tok-foreign", got)
	}
}

func TestReloadIgnoresSelfWrite(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetSession("tok-1", testUser()); err != nil {
		t.Fatalf("set session: %v", err)
	}

	notified := 0
	defer store.OnChange(func(domain.Session) { notified++ })()

	// The watcher fires for the store's own rename; content is unchanged.
	if err := store.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if notified != 0 {
		t.Errorf("notifications = %d, want 0 for an unchanged file", notified)
	}
}

func TestNewStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if store.Current().Authenticated() {
		t.Error("corrupt file produced an authenticated session")
	}
}
