package api

import (
	"context"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// UnlockContact spends one credit to reveal an artisan's contact details.
// RemainingContacts in the result is the backend's authoritative balance
// after the spend.
func (c *Client) UnlockContact(ctx context.Context, artisanID string) (*ports.UnlockResult, error) {
	var resp struct {
		Message           string          `json:"message"`
		RemainingContacts int             `json:"remainingContacts"`
		Artisan           *domain.Artisan `json:"artisan,omitempty"`
	}
	if err := c.do(ctx, http.MethodPost, "/unlocked-contacts/unlock", nil, map[string]string{"artisanId": artisanID}, &resp); err != nil {
		return nil, err
	}
	return &ports.UnlockResult{
		Message:           resp.Message,
		RemainingContacts: resp.RemainingContacts,
		Artisan:           resp.Artisan,
	}, nil
}

// MyUnlockedContacts lists every contact the caller has unlocked.
func (c *Client) MyUnlockedContacts(ctx context.Context) ([]domain.UnlockedContact, error) {
	var contacts []domain.UnlockedContact
	if err := c.do(ctx, http.MethodGet, "/unlocked-contacts/my-contacts", nil, nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// IsUnlocked reports whether the caller has already unlocked this artisan.
func (c *Client) IsUnlocked(ctx context.Context, artisanID string) (bool, error) {
	var resp struct {
		IsUnlocked bool `json:"isUnlocked"`
	}
	if err := c.do(ctx, http.MethodGet, "/unlocked-contacts/check/"+artisanID, nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsUnlocked, nil
}
