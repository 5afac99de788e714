package domain

// Session is the persisted "who is logged in" state: the bearer token plus a
// cached copy of the account record it authenticates.
//
// User is a cache of the last fetched record and may be stale relative to the
// backend; callers that need correctness (billing, unlock accounting) must
// re-fetch through the API before acting.
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Role returns the cached user's role, empty when anonymous or the user
// record has not been cached yet.
func (s Session) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// UserPatch is a partial update merged into the cached user record. Nil
// fields keep their current value; this is a merge, never a replace.
type UserPatch struct {
	Name             *string
	Email            *string
	Phone            *string
	ProfilePicture   *string
	IsVerified       *bool
	Subscription     *Subscription
	UnlockedContacts *int
}

// Apply merges the patch into a copy of u and returns it. A nil receiver
// yields nil: there is nothing to patch before a user is cached.
func (p UserPatch) Apply(u *User) *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Subscription != nil {
		sub := *u.Subscription
		out.Subscription = &sub
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.ProfilePicture != nil {
		out.ProfilePicture = *p.ProfilePicture
	}
	if p.IsVerified != nil {
		out.IsVerified = *p.IsVerified
	}
	if p.Subscription != nil {
		sub := *p.Subscription
		out.Subscription = &sub
	}
	if p.UnlockedContacts != nil {
		if out.Subscription == nil {
			out.Subscription = &Subscription{}
		}
		out.Subscription.UnlockedContacts = *p.UnlockedContacts
	}
	return &out
}
