package domain

const (
	RoleClient  = "client"
	RoleArtisan = "artisan"
	RoleAdmin   = "admin"
)

// User models a marketplace account as the backend reports it. The client
// never derives any of these fields itself; it displays and forwards them.
type User struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	Role           string        `json:"role"`
	IsVerified     bool          `json:"isVerified"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
	Subscription   *Subscription `json:"subscription,omitempty"`
}

// UnlockedContacts returns the remaining unlock credits, zero when the user
// has no subscription at all.
func (u *User) UnlockedContacts() int {
	if u == nil || u.Subscription == nil {
		return 0
	}
	return u.Subscription.UnlockedContacts
}

// HasActiveSubscription reports whether the user holds an active plan.
func (u *User) HasActiveSubscription() bool {
	return u != nil && u.Subscription != nil && u.Subscription.Status == SubscriptionActive
}

// DashboardRoute returns the landing route for a user's role. Anonymous and
// unknown roles land on the public home page.
func (u *User) DashboardRoute() Route {
	if u == nil {
		return RouteHome
	}
	switch u.Role {
	case RoleClient:
		return RouteBrowse
	case RoleArtisan:
		return RouteDashboard
	case RoleAdmin:
		return RouteAdmin
	default:
		return RouteHome
	}
}
