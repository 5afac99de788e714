package cli

import (
	"context"
	"fmt"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/page"
)

// maxRedirectDepth bounds chained guard redirects. A cycle between two
// misconfigured policies would otherwise recurse forever.
const maxRedirectDepth = 8

// navigator dispatches route changes back into page controllers. Pages that
// render without input run immediately; pages that need credentials or codes
// print the command to run instead.
type navigator struct {
	app   *App
	depth int
}

func (n *navigator) Go(ctx context.Context, route domain.Route, params map[string]string) error {
	if n.depth >= maxRedirectDepth {
		return fmt.Errorf("redirect loop detected at %s", route)
	}
	n.depth++
	defer func() { n.depth-- }()

	deps := n.app.deps
	switch route {
	case domain.RouteHome:
		return page.NewHome(deps).Run(ctx)
	case domain.RouteBrowse:
		return page.NewBrowse(deps).Run(ctx, page.BrowseForm{})
	case domain.RouteDashboard:
		return page.NewDashboard(deps).Run(ctx)
	case domain.RouteAccount:
		return page.NewAccount(deps).Run(ctx, page.AccountForm{})
	case domain.RouteSubscription:
		return page.NewSubscription(deps).Run(ctx, page.SubscriptionForm{})
	case domain.RouteReviews:
		return page.NewReviews(deps).Run(ctx, page.ReviewsForm{})
	case domain.RouteContacts:
		return page.NewContacts(deps).Run(ctx)
	case domain.RouteAdmin:
		return page.NewAdmin(deps).Run(ctx, page.AdminForm{})
	case domain.RouteProfile:
		if id := params[page.ParamID]; id != "" {
			return page.NewPublicProfile(deps).Run(ctx, page.PublicProfileForm{ArtisanID: id})
		}
		return page.NewBrowse(deps).Run(ctx, page.BrowseForm{})
	case domain.RouteLogin:
		fmt.Fprintln(deps.Out, "-> Sign in with: craftlink login --email <email> --password <password>")
	case domain.RouteRegister:
		fmt.Fprintln(deps.Out, "-> Create an account with: craftlink register")
	case domain.RouteVerifyEmail:
		email := params[page.ParamEmail]
		if email == "" {
			email = "<email>"
		}
		fmt.Fprintf(deps.Out, "-> Verify with: craftlink verify-email --email %s --code <code>\n", email)
	case domain.RouteForgotPassword:
		fmt.Fprintln(deps.Out, "-> Request a reset with: craftlink forgot-password --email <email>")
	case domain.RouteResetPassword:
		fmt.Fprintln(deps.Out, "-> Reset with: craftlink reset-password --token <token>")
	default:
		fmt.Fprintf(deps.Out, "-> %s\n", route)
	}
	return nil
}
