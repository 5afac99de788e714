package page

import (
	"context"
	"time"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// ReviewsAction selects what the my-reviews page should do.
type ReviewsAction string

const (
	ReviewsList   ReviewsAction = "list"
	ReviewsEdit   ReviewsAction = "edit"
	ReviewsDelete ReviewsAction = "delete"
)

// ReviewsForm is the my-reviews page's input. ReviewID selects the target for
// edit and delete.
type ReviewsForm struct {
	Action   ReviewsAction
	ReviewID string
	Rating   int
	Comment  string
}

// Reviews lists the reviews the signed-in client has written and lets them
// edit or remove one.
type Reviews struct {
	Deps
}

func NewReviews(d Deps) *Reviews {
	return &Reviews{Deps: d}
}

func (p *Reviews) Run(ctx context.Context, form ReviewsForm) error {
	_, ok, err := p.mount(ctx, guard.Role(domain.RoleClient))
	if err != nil || !ok {
		return err
	}
	if form.Action == "" {
		form.Action = ReviewsList
	}

	switch form.Action {
	case ReviewsEdit:
		return p.edit(ctx, form)
	case ReviewsDelete:
		return p.delete(ctx, form.ReviewID)
	default:
		return p.list(ctx)
	}
}

func (p *Reviews) list(ctx context.Context) error {
	var reviews []domain.Review
	load := func(ctx context.Context) error {
		var err error
		reviews, err = p.Backend.MyReviews(ctx)
		return err
	}
	if ok, err := p.fetch(ctx, "your reviews", load); err != nil || !ok {
		return err
	}
	p.renderList(reviews)
	return nil
}

func (p *Reviews) edit(ctx context.Context, form ReviewsForm) error {
	if form.ReviewID == "" {
		p.banner("No review selected.")
		return nil
	}
	if form.Rating < 1 || form.Rating > 5 {
		p.banner("Rating must be between 1 and 5")
		return nil
	}
	if form.Comment == "" {
		p.banner("Comment is required")
		return nil
	}

	p.println("Updating review...")
	if _, err := p.Backend.UpdateReview(ctx, form.ReviewID, form.Rating, form.Comment); err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to update review"))
		return nil
	}
	p.println("Review updated.")
	return p.list(ctx)
}

func (p *Reviews) delete(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		p.banner("No review selected.")
		return nil
	}
	if !p.Confirm.Confirm("Are you sure you want to delete this review?") {
		p.println("Cancelled.")
		return nil
	}

	p.println("Deleting review...")
	if err := p.Backend.DeleteReview(ctx, reviewID); err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to delete review"))
		return nil
	}
	p.println("Review deleted.")
	return p.list(ctx)
}

func (p *Reviews) renderList(reviews []domain.Review) {
	if len(reviews) == 0 {
		p.println("You haven't written any reviews yet.")
		return
	}
	p.printf("%d review(s):\n", len(reviews))
	for _, r := range reviews {
		target := "(removed artisan)"
		if r.Artisan != nil {
			target = r.Artisan.User.Name
			if r.Artisan.CraftType != "" {
				target += " (" + r.Artisan.CraftType + ")"
			}
		}
		p.printf("  [%s] %s %s\n", r.ID, stars(r.Rating), target)
		p.printf("    %s\n", r.Comment)
		p.printf("    Written %s\n", r.CreatedAt.Format(time.DateOnly))
	}
}
