package domain

import "time"

// Subscription status values as the backend reports them.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// Subscription summarizes a client's plan. UnlockedContacts is the remaining
// unlock credit balance maintained by the backend.
type Subscription struct {
	Plan             string     `json:"plan"`
	Status           string     `json:"status"`
	UnlockedContacts int        `json:"unlockedContacts"`
	EndDate          *time.Time `json:"endDate,omitempty"`
}

// Plan is a purchasable subscription tier. The catalog is presentation data;
// the backend owns pricing and entitlement enforcement.
type Plan struct {
	ID          string
	Name        string
	Price       string
	Description string
	Features    []string
}

// Plans returns the subscription catalog in display order.
func Plans() []Plan {
	return []Plan{
		{
			ID:          "basic-monthly",
			Name:        "Basic (Monthly)",
			Price:       "$19/month",
			Description: "Ideal for casual users.",
			Features: []string{
				"Access to 5 unlocked contacts per month",
				"Standard email support",
				"Basic craftsman profiles",
			},
		},
		{
			ID:          "basic-yearly",
			Name:        "Premium (Yearly)",
			Price:       "$199/year",
			Description: "Best value for frequent users. Save 12%!",
			Features: []string{
				"Access to 50 unlocked contacts per year",
				"Priority email support",
				"Early access to new features",
				"Enhanced craftsman profiles",
			},
		},
		{
			ID:          "pay-per-contact",
			Name:        "Pay-per-Contact",
			Price:       "$5/contact",
			Description: "Flexible, no monthly fees.",
			Features: []string{
				"Unlock contacts as needed",
				"Access to all craftsman profiles",
				"Standard email support",
				"No recurring charges",
			},
		},
	}
}

// PlanByID looks a plan up in the catalog.
func PlanByID(id string) (Plan, bool) {
	for _, p := range Plans() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
