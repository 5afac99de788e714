package page

import (
	"context"
	"strings"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// BrowseForm carries the optional search filters. Both blank means the full
// verified listing.
type BrowseForm struct {
	CraftType string
	Location  string
}

// Browse lists verified artisans with craft-type and location search, for
// any authenticated user.
type Browse struct {
	Deps
}

func NewBrowse(d Deps) *Browse {
	return &Browse{Deps: d}
}

func (p *Browse) Run(ctx context.Context, form BrowseForm) error {
	_, ok, err := p.mount(ctx, guard.Authenticated())
	if err != nil || !ok {
		return err
	}

	craftType := strings.TrimSpace(form.CraftType)
	location := strings.TrimSpace(form.Location)
	searching := craftType != "" || location != ""

	var artisans []domain.Artisan
	label := "artisans"
	load := func(ctx context.Context) error {
		var err error
		if searching {
			artisans, err = p.Backend.SearchArtisans(ctx, craftType, location)
		} else {
			artisans, err = p.Backend.VerifiedArtisans(ctx)
		}
		return err
	}
	if ok, err := p.fetch(ctx, label, load); err != nil || !ok {
		return err
	}

	if len(artisans) == 0 {
		if searching {
			p.println("No craftsmen found matching your search. Run 'craftlink browse' to see all craftsmen.")
		} else {
			p.println("No verified craftsmen yet.")
		}
		return nil
	}

	p.printf("Found %d verified craftsmen\n\n", len(artisans))
	for _, a := range artisans {
		p.renderCard(a)
	}
	return nil
}

func (p *Browse) renderCard(a domain.Artisan) {
	name := a.User.Name
	if name == "" {
		name = "Unknown"
	}
	p.printf("%s — %s\n", name, a.CraftType)
	p.printf("  %s | %.1f (%d reviews) | %d years experience\n", a.Location, a.Rating, a.NumberOfReviews, a.Experience)
	if a.Bio != "" {
		p.printf("  %s\n", truncate(a.Bio, 100))
	}
	if len(a.Skills) > 0 {
		shown := a.Skills
		suffix := ""
		if len(shown) > 3 {
			shown = shown[:3]
			suffix = ", ..."
		}
		p.printf("  Skills: %s%s\n", strings.Join(shown, ", "), suffix)
	}
	p.printf("  View full profile: craftlink profile %s\n\n", a.ID)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
