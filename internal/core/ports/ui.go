package ports

import (
	"context"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// Confirmer asks the user to approve a destructive or irreversible action
// before the page issues it. The backend performs the mutation
// unconditionally once called; confirmation is purely a client contract.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Navigator dispatches a redirect to another page. Params carry the small
// amount of state pages hand across a redirect (for example the email
// address passed to the verification page).
type Navigator interface {
	Go(ctx context.Context, route domain.Route, params map[string]string) error
}
