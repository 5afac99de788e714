package page

import (
	"context"
	"strings"
	"testing"

	"github.com/craftlink/craftlink/internal/core/domain"
)

func adminSession() domain.Session {
	return domain.Session{
		Token: "tok-admin",
		User:  &domain.User{ID: "adm", Name: "Root", Role: domain.RoleAdmin, IsVerified: true},
	}
}

func TestAdminDeniedForClientRole(t *testing.T) {
	env, deps := newTestEnv(clientSession(0, domain.SubscriptionActive))

	if err := NewAdmin(deps).Run(context.Background(), AdminForm{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := env.nav.last(); got != domain.RouteBrowse {
		t.Errorf("redirect = %q, want %q", got, domain.RouteBrowse)
	}
	if !strings.Contains(env.out.String(), "Access denied") {
		t.Errorf("expected access-denied notice, got:\n%s", env.out.String())
	}
}

func TestAdminVerifyDeclinedConfirmationMakesNoCall(t *testing.T) {
	env, deps := newTestEnv(adminSession())
	env.confirm.answer = false

	form := AdminForm{Action: AdminVerify, UserID: "u5"}
	if err := NewAdmin(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if env.backend.verifyArtisanCalls != 0 {
		t.Fatalf("verify calls = %d, want 0 after declined confirmation", env.backend.verifyArtisanCalls)
	}
	if len(env.confirm.prompts) != 1 {
		t.Errorf("confirm prompts = %d, want 1", len(env.confirm.prompts))
	}
}

func TestAdminVerifyConfirmedCallsBackendAndRefreshes(t *testing.T) {
	env, deps := newTestEnv(adminSession())
	env.confirm.answer = true
	env.backend.verifyArtisanFn = func(_ context.Context, userID string) (string, error) {
		if userID != "u5" {
			t.Fatalf("verify user id = %q, want u5", userID)
		}
		return "Artisan verified successfully", nil
	}
	refetched := false
	env.backend.unverifiedFn = func(context.Context) ([]domain.Artisan, error) {
		refetched = true
		return nil, nil
	}

	form := AdminForm{Action: AdminVerify, UserID: "u5"}
	if err := NewAdmin(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if env.backend.verifyArtisanCalls != 1 {
		t.Fatalf("verify calls = %d, want 1", env.backend.verifyArtisanCalls)
	}
	if !refetched {
		t.Error("overview not refreshed after mutation")
	}
	if !strings.Contains(env.out.String(), "Artisan verified successfully") {
		t.Errorf("backend message not shown:\n%s", env.out.String())
	}
}

func TestAdminInFlightAccountRejectsSecondSubmission(t *testing.T) {
	env, deps := newTestEnv(adminSession())
	env.confirm.answer = true

	admin := NewAdmin(deps)
	admin.processing["u5"] = struct{}{}

	form := AdminForm{Action: AdminVerify, UserID: "u5"}
	if err := admin.Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if env.backend.verifyArtisanCalls != 0 {
		t.Fatalf("verify calls = %d, want 0 while in flight", env.backend.verifyArtisanCalls)
	}
	if !strings.Contains(env.out.String(), "already being processed") {
		t.Errorf("expected in-flight banner, got:\n%s", env.out.String())
	}
}
