// Package guard enforces each page's access policy against the current
// session. The check is pure: it reads the session it is handed and returns a
// decision; it never caches across mounts and never performs I/O.
package guard

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// Policy declares who may mount a page.
type Policy struct {
	anonymousOnly bool
	requireAuth   bool
	roles         []string
}

// AnonymousOnly admits only visitors without a session (login, register).
func AnonymousOnly() Policy {
	return Policy{anonymousOnly: true}
}

// Authenticated admits any logged-in user regardless of role.
func Authenticated() Policy {
	return Policy{requireAuth: true}
}

// Role admits only logged-in users whose cached role is in the allowed set.
func Role(roles ...string) Policy {
	return Policy{requireAuth: true, roles: roles}
}

// Public admits everyone (the home page).
func Public() Policy {
	return Policy{}
}

// Decision is the outcome of a policy check. When Allowed is false the page
// renders nothing further and the navigator follows Redirect. ClearSession
// signals that the token was found expired and must be discarded before
// redirecting.
type Decision struct {
	Allowed      bool
	Redirect     domain.Route
	Notice       string
	ClearSession bool
}

// Check evaluates the policy against the session. It runs on every page
// mount: a user can become unauthorized mid-session (token cleared or
// expired in another process) and is caught on the next navigation.
func Check(s domain.Session, p Policy) Decision {
	if p.anonymousOnly {
		if s.Authenticated() {
			return Decision{
				Redirect: domain.RouteHome,
				Notice:   "You are already logged in.",
			}
		}
		return Decision{Allowed: true}
	}

	if !p.requireAuth {
		return Decision{Allowed: true}
	}

	if !s.Authenticated() {
		return Decision{Redirect: domain.RouteLogin}
	}

	if tokenExpired(s.Token) {
		return Decision{
			Redirect:     domain.RouteLogin,
			Notice:       "Your session has expired. Please log in again.",
			ClearSession: true,
		}
	}

	if len(p.roles) > 0 {
		role := s.Role()
		for _, allowed := range p.roles {
			if role == allowed {
				return Decision{Allowed: true}
			}
		}
		return Decision{
			Redirect: s.User.DashboardRoute(),
			Notice:   "Access denied.",
		}
	}

	return Decision{Allowed: true}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the client holds no signing key, and verification is the
// backend's job. Tokens that do not parse as JWTs are treated as opaque and
// left for the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
