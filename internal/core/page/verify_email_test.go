package page

import (
	"context"
	"strings"
	"testing"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

func TestVerifyEmailSuccessPersistsFirstSession(t *testing.T) {
	env, deps := newTestEnv(domain.Session{})
	env.backend.verifyEmailFn = func(_ context.Context, email, code string) (*ports.AuthResult, error) {
		if email != "ana@example.com" || code != "482913" {
			t.Fatalf("unexpected verify payload: %s / %s", email, code)
		}
		return &ports.AuthResult{
			Token: "tok-first",
			User:  &domain.User{ID: "u9", Role: domain.RoleArtisan, IsVerified: true},
		}, nil
	}

	form := VerifyEmailForm{Email: "ana@example.com", Code: "482913"}
	if err := NewVerifyEmail(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}

	if env.session.sess.Token != "tok-first" {
		t.Errorf("persisted token = %q, want tok-first", env.session.sess.Token)
	}
	if got := env.nav.last(); got != domain.RouteDashboard {
		t.Errorf("redirect = %q, want %q", got, domain.RouteDashboard)
	}
}

func TestVerifyEmailShortCodeRejectedLocally(t *testing.T) {
	env, deps := newTestEnv(domain.Session{})
	called := false
	env.backend.verifyEmailFn = func(context.Context, string, string) (*ports.AuthResult, error) {
		called = true
		return &ports.AuthResult{}, nil
	}

	form := VerifyEmailForm{Email: "ana@example.com", Code: "123"}
	if err := NewVerifyEmail(deps).Run(context.Background(), form); err != nil {
		t.Fatalf("run: %v", err)
	}
	if called {
		t.Error("backend called with a short code")
	}
	if !strings.Contains(env.out.String(), "6-digit") {
		t.Errorf("expected code-length banner, got:\n%s", env.out.String())
	}
}

func TestVerifyEmailWithoutEmailReturnsToRegister(t *testing.T) {
	env, deps := newTestEnv(domain.Session{})
	if err := NewVerifyEmail(deps).Run(context.Background(), VerifyEmailForm{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := env.nav.last(); got != domain.RouteRegister {
		t.Errorf("redirect = %q, want %q", got, domain.RouteRegister)
	}
}
