package api

import (
	"context"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// UnverifiedArtisans lists artisans awaiting admin verification.
func (c *Client) UnverifiedArtisans(ctx context.Context) ([]domain.Artisan, error) {
	var artisans []domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/admin/artisans/unverified", nil, nil, &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}

// AdminVerifiedArtisans lists already-verified artisans for the admin view.
func (c *Client) AdminVerifiedArtisans(ctx context.Context) ([]domain.Artisan, error) {
	var artisans []domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/admin/artisans/verified", nil, nil, &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}

// VerifyArtisan marks an artisan as verified.
func (c *Client) VerifyArtisan(ctx context.Context, userID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/artisan/verify/"+userID, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UnverifyArtisan revokes an artisan's verified status.
func (c *Client) UnverifyArtisan(ctx context.Context, userID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/artisan/unverify/"+userID, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Users lists every account on the platform.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/admin/user/"+userID, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
