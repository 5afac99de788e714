package api

import (
	"context"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// Subscribe purchases a plan. The response includes the refreshed user
// record, which callers persist into the session so every open page sees the
// new credit balance.
func (c *Client) Subscribe(ctx context.Context, plan string) (*ports.SubscribeResult, error) {
	var resp struct {
		Message string       `json:"message"`
		User    *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/subscription/subscribe", nil, map[string]string{"plan": plan}, &resp); err != nil {
		return nil, err
	}
	return &ports.SubscribeResult{Message: resp.Message, User: resp.User}, nil
}

// SubscriptionStatus fetches the caller's current plan summary.
func (c *Client) SubscriptionStatus(ctx context.Context) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := c.do(ctx, http.MethodGet, "/subscription/status", nil, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels the caller's active plan.
func (c *Client) CancelSubscription(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/subscription/cancel", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
