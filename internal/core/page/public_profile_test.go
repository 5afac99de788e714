package page

import (
	"context"
	"strings"
	"testing"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

func testArtisan() *domain.Artisan {
	return &domain.Artisan{
		ID:        "a1",
		User:      domain.ArtisanUser{Name: "Marco", Email: "marco@example.com", Phone: "555-0101"},
		CraftType: "Carpentry",
		Location:  "Lisbon",
	}
}

func TestUnlockWithZeroCreditsNeverCallsBackend(t *testing.T) {
	env, deps := newTestEnv(clientSession(0, domain.SubscriptionActive))
	env.backend.artisanByIDFn = func(context.Context, string) (*domain.Artisan, error) {
		return testArtisan(), nil
	}

	form := PublicProfileForm{ArtisanID: "a1", Action: ProfileUnlock}
	if err := NewPublicProfile(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}

	if env.backend.unlockCalls != 0 {
		t.Fatalf("unlock calls = %d, want 0 at zero credits", env.backend.unlockCalls)
	}
	if !strings.Contains(env.out.String(), "No unlocks remaining") {
		t.Errorf("expected upgrade prompt, got:\n%s", env.out.String())
	}
	if len(env.session.patches) != 0 {
		t.Errorf("session patched despite blocked unlock: %+v", env.session.patches)
	}
}

func TestUnlockSpendsCreditAndPatchesBalance(t *testing.T) {
	env, deps := newTestEnv(clientSession(3, domain.SubscriptionActive))
	env.backend.artisanByIDFn = func(context.Context, string) (*domain.Artisan, error) {
		return testArtisan(), nil
	}
	env.backend.unlockFn = func(_ context.Context, artisanID string) (*ports.UnlockResult, error) {
		if artisanID != "a1" {
			t.Fatalf("unlock artisan id = %q, want a1", artisanID)
		}
		return &ports.UnlockResult{RemainingContacts: 2, Artisan: testArtisan()}, nil
	}

	form := PublicProfileForm{ArtisanID: "a1", Action: ProfileUnlock}
	if err := NewPublicProfile(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}

	if env.backend.unlockCalls != 1 {
		t.Fatalf("unlock calls = %d, want 1", env.backend.unlockCalls)
	}
	if got := env.session.sess.User.UnlockedContacts(); got != 2 {
		t.Errorf("cached credits = %d, want 2", got)
	}
	out := env.out.String()
	if !strings.Contains(out, "marco@example.com") || !strings.Contains(out, "555-0101") {
		t.Errorf("contact details not rendered:\n%s", out)
	}
}

func TestUnlockWithoutSubscriptionOffersUpgrade(t *testing.T) {
	sess := clientSession(0, domain.SubscriptionActive)
	sess.User.Subscription = nil
	env, deps := newTestEnv(sess)
	env.backend.artisanByIDFn = func(context.Context, string) (*domain.Artisan, error) {
		return testArtisan(), nil
	}
	env.confirm.answer = true

	form := PublicProfileForm{ArtisanID: "a1", Action: ProfileUnlock}
	if err := NewPublicProfile(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}

	if env.backend.unlockCalls != 0 {
		t.Fatalf("unlock calls = %d, want 0 without subscription", env.backend.unlockCalls)
	}
	if got := env.nav.last(); got != domain.RouteSubscription {
		t.Errorf("redirect = %q, want %q", got, domain.RouteSubscription)
	}
}

func TestUnlockAnonymousRedirectsToLogin(t *testing.T) {
	env, deps := newTestEnv(domain.Session{})
	env.backend.artisanByIDFn = func(context.Context, string) (*domain.Artisan, error) {
		return testArtisan(), nil
	}

	form := PublicProfileForm{ArtisanID: "a1", Action: ProfileUnlock}
	if err := NewPublicProfile(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if env.backend.unlockCalls != 0 {
		t.Fatalf("unlock calls = %d, want 0 when anonymous", env.backend.unlockCalls)
	}
	if got := env.nav.last(); got != domain.RouteLogin {
		t.Errorf("redirect = %q, want %q", got, domain.RouteLogin)
	}
}

func TestReviewDuplicateBlockedLocally(t *testing.T) {
	env, deps := newTestEnv(clientSession(3, domain.SubscriptionActive))
	env.backend.artisanByIDFn = func(context.Context, string) (*domain.Artisan, error) {
		return testArtisan(), nil
	}
	env.backend.reviewsFn = func(context.Context, string) ([]domain.Review, error) {
		return []domain.Review{{ID: "r1", Client: domain.ReviewAuthor{ID: "u1"}, Rating: 4}}, nil
	}
	called := false
	env.backend.createReviewFn = func(context.Context, ports.CreateReviewInput) (*domain.Review, error) {
		called = true
		return &domain.Review{}, nil
	}

	form := PublicProfileForm{ArtisanID: "a1", Action: ProfileReview, Rating: 5, Comment: "Great"}
	if err := NewPublicProfile(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if called {
		t.Error("review submitted despite existing review by the same client")
	}
	if !strings.Contains(env.out.String(), "already reviewed") {
		t.Errorf("expected duplicate-review banner, got:\n%s", env.out.String())
	}
}
