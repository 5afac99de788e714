package page

import (
	"context"
	"time"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// Contacts lists the artisan contacts the signed-in client has unlocked.
type Contacts struct {
	Deps
}

func NewContacts(d Deps) *Contacts {
	return &Contacts{Deps: d}
}

func (p *Contacts) Run(ctx context.Context) error {
	sess, ok, err := p.mount(ctx, guard.Role(domain.RoleClient))
	if err != nil || !ok {
		return err
	}

	var contacts []domain.UnlockedContact
	load := func(ctx context.Context) error {
		var err error
		contacts, err = p.Backend.MyUnlockedContacts(ctx)
		return err
	}
	if ok, err := p.fetch(ctx, "unlocked contacts", load); err != nil || !ok {
		return err
	}

	if len(contacts) == 0 {
		p.println("You haven't unlocked any contacts yet. Browse artisans to find one.")
		return nil
	}

	p.printf("Credits remaining: %d\n", sess.User.UnlockedContacts())
	p.printf("%d unlocked contact(s):\n", len(contacts))
	for _, c := range contacts {
		a := c.Artisan
		p.printf("  %s — %s in %s\n", a.User.Name, a.CraftType, a.Location)
		p.printf("    Email: %s | Phone: %s\n", a.User.Email, a.User.Phone)
		p.printf("    Unlocked %s\n", c.UnlockedAt.Format(time.DateOnly))
	}
	return nil
}
