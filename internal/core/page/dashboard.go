package page

import (
	"context"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// Dashboard is the authenticated landing page: the fresh account record,
// plus the craft profile when the account is an artisan.
type Dashboard struct {
	Deps
}

func NewDashboard(d Deps) *Dashboard {
	return &Dashboard{Deps: d}
}

func (p *Dashboard) Run(ctx context.Context) error {
	_, ok, err := p.mount(ctx, guard.Authenticated())
	if err != nil || !ok {
		return err
	}

	var user *domain.User
	var artisan *domain.Artisan
	load := func(ctx context.Context) error {
		var err error
		user, err = p.Backend.Profile(ctx)
		if err != nil {
			return err
		}
		if user.Role == domain.RoleArtisan {
			artisan, err = p.Backend.OwnArtisanProfile(ctx)
		}
		return err
	}
	if ok, err := p.fetch(ctx, "dashboard", load); err != nil || !ok {
		return err
	}

	p.printf("%s <%s>\n", user.Name, user.Email)
	p.printf("  Role: %s | Picture: %s\n", user.Role, p.picture(user.ProfilePicture))

	switch user.Role {
	case domain.RoleArtisan:
		p.printf("  Craft: %s in %s — %d years\n", artisan.CraftType, artisan.Location, artisan.Experience)
		p.printf("  Rating: %.1f (%d reviews)\n", artisan.Rating, artisan.NumberOfReviews)
		if artisan.IsVerified {
			p.println("  Status: verified")
		} else {
			p.println("  Status: pending admin verification")
		}
	case domain.RoleClient:
		if user.HasActiveSubscription() {
			p.printf("  Subscription: %s (active), %d unlocks remaining\n",
				user.Subscription.Plan, user.UnlockedContacts())
		} else {
			p.println("  Subscription: none — see 'craftlink subscription'")
		}
	}
	return nil
}
