package page

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// AdminAction selects what the admin page should do.
type AdminAction string

const (
	AdminOverview   AdminAction = "overview"
	AdminVerify     AdminAction = "verify"
	AdminUnverify   AdminAction = "unverify"
	AdminDeleteUser AdminAction = "delete-user"
)

// AdminForm is the admin page's input. UserID selects the target account for
// the mutating actions.
type AdminForm struct {
	Action AdminAction
	UserID string
}

// Admin is the administration page: artisan verification queue, verified
// roster and user management. The processing set prevents a second mutation
// for the same account while the first is still in flight.
type Admin struct {
	Deps

	processing map[string]struct{}
}

func NewAdmin(d Deps) *Admin {
	return &Admin{Deps: d, processing: make(map[string]struct{})}
}

func (p *Admin) Run(ctx context.Context, form AdminForm) error {
	_, ok, err := p.mount(ctx, guard.Role(domain.RoleAdmin))
	if err != nil || !ok {
		return err
	}
	if form.Action == "" {
		form.Action = AdminOverview
	}

	switch form.Action {
	case AdminVerify:
		return p.mutate(ctx, form.UserID, "Verify this artisan?", "verify artisan", p.Backend.VerifyArtisan)
	case AdminUnverify:
		return p.mutate(ctx, form.UserID, "Revoke this artisan's verification?", "unverify artisan", p.Backend.UnverifyArtisan)
	case AdminDeleteUser:
		return p.mutate(ctx, form.UserID, "Permanently delete this user?", "delete user", p.Backend.DeleteUser)
	default:
		return p.overview(ctx)
	}
}

// mutate runs one admin action against a user id: confirm, guard against a
// duplicate in-flight submission, call the backend, then refresh the
// overview so the lists reflect the change.
func (p *Admin) mutate(ctx context.Context, userID, prompt, label string, call func(context.Context, string) (string, error)) error {
	if userID == "" {
		p.banner("No user selected.")
		return nil
	}
	if _, busy := p.processing[userID]; busy {
		p.banner("That account is already being processed.")
		return nil
	}
	if !p.Confirm.Confirm(prompt) {
		p.println("Cancelled.")
		return nil
	}

	p.processing[userID] = struct{}{}
	defer delete(p.processing, userID)

	message, err := call(ctx, userID)
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to "+label))
		return nil
	}
	if message == "" {
		message = "Done."
	}
	p.println(message)
	return p.overview(ctx)
}

func (p *Admin) overview(ctx context.Context) error {
	var (
		pending  []domain.Artisan
		verified []domain.Artisan
		users    []domain.User
	)
	load := func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			pending, err = p.Backend.UnverifiedArtisans(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			verified, err = p.Backend.AdminVerifiedArtisans(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			users, err = p.Backend.Users(ctx)
			return err
		})
		return g.Wait()
	}
	if ok, err := p.fetch(ctx, "admin data", load); err != nil || !ok {
		return err
	}

	p.printf("Pending verification (%d):\n", len(pending))
	if len(pending) == 0 {
		p.println("  none")
	}
	for _, a := range pending {
		p.printf("  [%s] %s — %s in %s, %d years\n", a.User.ID, a.User.Name, a.CraftType, a.Location, a.Experience)
	}

	p.printf("Verified artisans (%d):\n", len(verified))
	if len(verified) == 0 {
		p.println("  none")
	}
	for _, a := range verified {
		p.printf("  [%s] %s — %s in %s\n", a.User.ID, a.User.Name, a.CraftType, a.Location)
	}

	p.printf("Users (%d):\n", len(users))
	for _, u := range users {
		p.printf("  [%s] %s <%s> — %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return nil
}
