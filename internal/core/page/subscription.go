package page

import (
	"context"
	"time"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// SubscriptionAction selects what the subscription page should do.
type SubscriptionAction string

const (
	SubscriptionView      SubscriptionAction = "view"
	SubscriptionSubscribe SubscriptionAction = "subscribe"
	SubscriptionCancel    SubscriptionAction = "cancel"
)

// SubscriptionForm is the subscription page's input. The payment fields are
// only checked for presence: actual billing happens server-side.
type SubscriptionForm struct {
	Action SubscriptionAction
	PlanID string

	CardNumber string
	Expiry     string
	CVC        string
}

// SubscriptionPage lets clients inspect the plan catalog, subscribe and
// cancel. Artisans and admins have nothing to pay for here.
type SubscriptionPage struct {
	Deps
}

func NewSubscription(d Deps) *SubscriptionPage {
	return &SubscriptionPage{Deps: d}
}

func (p *SubscriptionPage) Run(ctx context.Context, form SubscriptionForm) error {
	_, ok, err := p.mount(ctx, guard.Role(domain.RoleClient))
	if err != nil || !ok {
		return err
	}
	if form.Action == "" {
		form.Action = SubscriptionView
	}

	switch form.Action {
	case SubscriptionSubscribe:
		return p.subscribe(ctx, form)
	case SubscriptionCancel:
		return p.cancel(ctx)
	default:
		return p.view(ctx)
	}
}

func (p *SubscriptionPage) view(ctx context.Context) error {
	var sub *domain.Subscription
	load := func(ctx context.Context) error {
		var err error
		sub, err = p.Backend.SubscriptionStatus(ctx)
		return err
	}
	if ok, err := p.fetch(ctx, "subscription", load); err != nil || !ok {
		return err
	}

	p.renderStatus(sub)
	p.println("")
	p.println("Available plans:")
	for _, plan := range domain.Plans() {
		current := ""
		if sub != nil && sub.Plan == plan.ID && sub.Status == domain.SubscriptionActive {
			current = " (current plan)"
		}
		p.printf("  %s — %s, %s%s\n", plan.ID, plan.Name, plan.Price, current)
		p.printf("    %s\n", plan.Description)
		for _, f := range plan.Features {
			p.printf("    - %s\n", f)
		}
	}
	return nil
}

func (p *SubscriptionPage) subscribe(ctx context.Context, form SubscriptionForm) error {
	plan, ok := domain.PlanByID(form.PlanID)
	if !ok {
		p.banner("Unknown plan. Run the subscription page to list available plans.")
		return nil
	}
	if form.CardNumber == "" || form.Expiry == "" || form.CVC == "" {
		p.banner("Please fill in all payment details")
		return nil
	}

	p.printf("Subscribing to %s...\n", plan.Name)
	result, err := p.Backend.Subscribe(ctx, plan.ID)
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Subscription failed. Please try again."))
		return nil
	}

	if result.User != nil {
		patch := domain.UserPatch{Subscription: result.User.Subscription}
		if err := p.Session.UpdateUser(patch); err != nil {
			return err
		}
	}
	if result.Message != "" {
		p.println(result.Message)
	} else {
		p.println("Subscription successful!")
	}

	// Refetch so the rendered status reflects the server's view.
	sub, err := p.Backend.SubscriptionStatus(ctx)
	if err != nil {
		p.Logger.Warn().Err(err).Msg("refetch subscription status")
		return nil
	}
	p.renderStatus(sub)
	return nil
}

func (p *SubscriptionPage) cancel(ctx context.Context) error {
	if !p.Confirm.Confirm("Are you sure you want to cancel your subscription?") {
		p.println("Cancelled.")
		return nil
	}

	p.println("Cancelling subscription...")
	message, err := p.Backend.CancelSubscription(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to cancel subscription"))
		return nil
	}

	sess := p.Session.Current()
	if sess.User != nil && sess.User.Subscription != nil {
		sub := *sess.User.Subscription
		sub.Status = domain.SubscriptionCancelled
		if err := p.Session.UpdateUser(domain.UserPatch{Subscription: &sub}); err != nil {
			return err
		}
	}
	if message == "" {
		message = "Subscription cancelled."
	}
	p.println(message)
	return nil
}

func (p *SubscriptionPage) renderStatus(sub *domain.Subscription) {
	if sub == nil || sub.Plan == "" {
		p.println("You have no active subscription.")
		return
	}
	p.printf("Plan: %s (%s)\n", sub.Plan, sub.Status)
	p.printf("  Contact unlocks remaining: %d\n", sub.UnlockedContacts)
	if sub.EndDate != nil {
		p.printf("  Renews/ends: %s\n", sub.EndDate.Format(time.DateOnly))
	}
}
