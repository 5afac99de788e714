package page

import (
	"context"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// Home is the public landing page. It renders for everyone, adapting its
// navigation hints to the current session.
type Home struct {
	Deps
}

func NewHome(d Deps) *Home {
	return &Home{Deps: d}
}

func (p *Home) Run(ctx context.Context) error {
	sess, ok, err := p.mount(ctx, guard.Public())
	if err != nil || !ok {
		return err
	}

	p.println("CraftLink — connecting you with verified artisans for all your home and business needs.")
	p.println()

	if !sess.Authenticated() {
		p.println("  craftlink login        Log in to your account")
		p.println("  craftlink register     Create an account")
		return nil
	}

	if sess.User != nil {
		p.printf("Welcome back, %s!\n", sess.User.Name)
	}
	p.println("  craftlink browse       Browse verified craftsmen")
	switch sess.Role() {
	case domain.RoleArtisan:
		p.println("  craftlink dashboard    Your artisan dashboard")
	case domain.RoleAdmin:
		p.println("  craftlink admin        Admin panel")
	default:
		p.println("  craftlink contacts     Your unlocked contacts")
		p.println("  craftlink subscription Manage your subscription")
	}
	return nil
}
