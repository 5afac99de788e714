// Package page implements the page controllers: one per screen, each
// orchestrating guard → fetch → render → mutate → navigate. Controllers
// depend only on the ports they are handed, so every page is testable with
// stub implementations.
package page

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
	"github.com/craftlink/craftlink/internal/core/ports"
	"github.com/craftlink/craftlink/internal/imageurl"
)

// Params keys passed through navigation.
const (
	ParamEmail  = "email"
	ParamID     = "id"
	ParamNotice = "notice"
)

// Deps bundles the ports every page composes. Origin is the API server
// origin used to resolve profile-picture paths.
type Deps struct {
	Backend ports.Backend
	Session ports.SessionStore
	Confirm ports.Confirmer
	Nav     ports.Navigator
	Origin  string
	Out     io.Writer
	Logger  zerolog.Logger
}

func (d Deps) printf(format string, args ...any) {
	fmt.Fprintf(d.Out, format, args...)
}

func (d Deps) println(args ...any) {
	fmt.Fprintln(d.Out, args...)
}

// banner renders an inline error line. Errors never escape a page as a
// crash; they are shown and the page offers a next action.
func (d Deps) banner(msg string) {
	fmt.Fprintf(d.Out, "! %s\n", msg)
}

// picture resolves a profile-picture reference against the API origin.
func (d Deps) picture(ref string) string {
	return imageurl.Resolve(ref, d.Origin)
}

// mount checks the page's access policy against the current session. When
// the decision is a denial the redirect has already been dispatched and the
// page must render nothing further.
func (d Deps) mount(ctx context.Context, policy guard.Policy) (domain.Session, bool, error) {
	sess := d.Session.Current()
	decision := guard.Check(sess, policy)
	if decision.Allowed {
		return sess, true, nil
	}
	if decision.Notice != "" {
		d.banner(decision.Notice)
	}
	if decision.ClearSession {
		if err := d.Session.Clear(); err != nil {
			return sess, false, err
		}
	}
	return sess, false, d.Nav.Go(ctx, decision.Redirect, nil)
}

// forceLogout handles a backend unauthorized rejection mid-page: the session
// is treated as expired, cleared, and the user is sent back to login.
func (d Deps) forceLogout(ctx context.Context) error {
	d.banner("Your session has expired. Please log in again.")
	if err := d.Session.Clear(); err != nil {
		return err
	}
	return d.Nav.Go(ctx, domain.RouteLogin, nil)
}

// fetch runs a load step with the page in its loading state. On failure the
// error is rendered inline and the user is offered a retry; an unauthorized
// rejection instead expires the session. The returned bool reports whether
// the page may proceed to ready.
func (d Deps) fetch(ctx context.Context, label string, load func(context.Context) error) (bool, error) {
	for {
		d.printf("Loading %s...\n", label)
		err := load(ctx)
		if err == nil {
			return true, nil
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if api.IsUnauthorized(err) {
			return false, d.forceLogout(ctx)
		}
		d.banner(api.Message(err, "Failed to load "+label+". Please try again."))
		if !d.Confirm.Confirm("Retry?") {
			return false, nil
		}
	}
}
