package page

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// ProfileAction selects what the public-profile page should do after
// loading.
type ProfileAction string

const (
	ProfileView   ProfileAction = "view"
	ProfileUnlock ProfileAction = "unlock"
	ProfileReview ProfileAction = "review"
)

// PublicProfileForm is the public-profile page's input.
type PublicProfileForm struct {
	ArtisanID string `validate:"required"`
	Action    ProfileAction
	Rating    int
	Comment   string
}

// PublicProfile shows one artisan to a visitor: profile, reviews, and the
// contact-unlock and review actions for clients.
type PublicProfile struct {
	Deps
}

func NewPublicProfile(d Deps) *PublicProfile {
	return &PublicProfile{Deps: d}
}

func (p *PublicProfile) Run(ctx context.Context, form PublicProfileForm) error {
	sess, ok, err := p.mount(ctx, guard.Public())
	if err != nil || !ok {
		return err
	}
	if form.ArtisanID == "" {
		p.banner("No artisan ID provided")
		return nil
	}
	if form.Action == "" {
		form.Action = ProfileView
	}

	// Artisan and reviews are independent; fetch them jointly and leave
	// loading only when both have settled.
	var artisan *domain.Artisan
	var reviews []domain.Review
	load := func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			artisan, err = p.Backend.ArtisanByID(gctx, form.ArtisanID)
			return err
		})
		g.Go(func() error {
			var err error
			reviews, err = p.Backend.ArtisanReviews(gctx, form.ArtisanID)
			return err
		})
		return g.Wait()
	}
	if ok, err := p.fetch(ctx, "artisan profile", load); err != nil || !ok {
		return err
	}

	isClient := sess.Authenticated() && sess.Role() == domain.RoleClient

	unlocked := false
	if isClient {
		// Non-fatal: the unlock badge is cosmetic on the view path.
		unlocked, err = p.Backend.IsUnlocked(ctx, form.ArtisanID)
		if err != nil {
			p.Logger.Warn().Err(err).Str("artisan_id", form.ArtisanID).Msg("unlock check failed")
		}
	}

	switch form.Action {
	case ProfileUnlock:
		return p.unlock(ctx, sess, artisan, unlocked)
	case ProfileReview:
		return p.review(ctx, sess, artisan, reviews, form)
	default:
		p.render(sess, artisan, reviews, unlocked)
		return nil
	}
}

// unlock spends one credit to reveal the artisan's contact details. The
// credit gate runs client-side against the cached balance: at zero the API
// call is never issued and the user is pointed at the upgrade path.
func (p *PublicProfile) unlock(ctx context.Context, sess domain.Session, artisan *domain.Artisan, unlocked bool) error {
	if !sess.Authenticated() {
		p.banner("Please login to unlock contacts")
		return p.Nav.Go(ctx, domain.RouteLogin, nil)
	}
	if sess.Role() != domain.RoleClient {
		p.banner("Only clients can unlock contacts")
		return nil
	}
	if unlocked {
		p.println("Contact already unlocked.")
		p.renderContact(artisan)
		return nil
	}
	if !sess.User.HasActiveSubscription() {
		p.banner("Please subscribe to unlock contacts")
		if p.Confirm.Confirm("Subscribe now?") {
			return p.Nav.Go(ctx, domain.RouteSubscription, nil)
		}
		return nil
	}
	if sess.User.UnlockedContacts() == 0 {
		p.banner("No unlocks remaining. Upgrade your plan: craftlink subscription")
		return nil
	}

	p.println("Unlocking contact...")
	result, err := p.Backend.UnlockContact(ctx, artisan.ID)
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to unlock contact"))
		return nil
	}

	// Every open page sees the new balance through the change notification.
	remaining := result.RemainingContacts
	if err := p.Session.UpdateUser(domain.UserPatch{UnlockedContacts: &remaining}); err != nil {
		return err
	}

	p.printf("Contact unlocked! (%d contacts remaining)\n", remaining)
	if result.Artisan != nil {
		p.renderContact(result.Artisan)
	} else {
		p.renderContact(artisan)
	}
	return nil
}

// review submits a new review; one per client per artisan.
func (p *PublicProfile) review(ctx context.Context, sess domain.Session, artisan *domain.Artisan, reviews []domain.Review, form PublicProfileForm) error {
	if !sess.Authenticated() {
		p.banner("Please login to write a review")
		return p.Nav.Go(ctx, domain.RouteLogin, nil)
	}
	if sess.Role() != domain.RoleClient {
		p.banner("Only clients can write reviews")
		return nil
	}
	for _, r := range reviews {
		if sess.User != nil && r.Client.ID == sess.User.ID {
			p.banner("You have already reviewed this craftsman.")
			return nil
		}
	}

	input := ports.CreateReviewInput{
		ArtisanID: artisan.ID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	}
	if err := checkForm(input); err != nil {
		p.banner(err.Error())
		return nil
	}

	p.println("Submitting review...")
	if _, err := p.Backend.CreateReview(ctx, input); err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to submit review"))
		return nil
	}
	p.println("Review submitted. Thank you!")
	return nil
}

func (p *PublicProfile) render(sess domain.Session, artisan *domain.Artisan, reviews []domain.Review, unlocked bool) {
	name := artisan.User.Name
	if name == "" {
		name = "Unknown"
	}
	p.printf("%s — %s\n", name, artisan.CraftType)
	p.printf("  %s | %.1f (%d reviews) | %d years experience\n",
		artisan.Location, artisan.Rating, artisan.NumberOfReviews, artisan.Experience)
	p.printf("  Picture: %s\n", p.picture(artisan.User.ProfilePicture))
	if artisan.Bio != "" {
		p.printf("  %s\n", artisan.Bio)
	}
	if len(artisan.PortfolioImages) > 0 {
		p.printf("  Portfolio: %d images\n", len(artisan.PortfolioImages))
	}

	if unlocked {
		p.renderContact(artisan)
	} else if sess.Authenticated() && sess.Role() == domain.RoleClient {
		p.printf("  Available unlocks: %d — unlock with: craftlink profile %s --unlock\n",
			sess.User.UnlockedContacts(), artisan.ID)
	}

	p.printf("\nReviews (%d)\n", len(reviews))
	for _, r := range reviews {
		author := r.Client.Name
		if author == "" {
			author = "Anonymous"
		}
		p.printf("  %s %s — %s (%s)\n", stars(r.Rating), author, r.Comment, r.CreatedAt.Format("2006-01-02"))
	}
}

func (p *PublicProfile) renderContact(artisan *domain.Artisan) {
	p.println("  Contact details:")
	p.printf("    Email: %s\n", artisan.User.Email)
	p.printf("    Phone: %s\n", artisan.User.Phone)
}

func stars(rating int) string {
	const full = "★★★★★"
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return full[:rating*len("★")] + "☆☆☆☆☆"[:(5-rating)*len("☆")]
}
