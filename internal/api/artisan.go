package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// OwnArtisanProfile fetches the caller's craft profile (artisan role only).
func (c *Client) OwnArtisanProfile(ctx context.Context) (*domain.Artisan, error) {
	var artisan domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/artisan/profile", nil, nil, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

// UpdateArtisanProfile saves the caller's craft profile.
func (c *Client) UpdateArtisanProfile(ctx context.Context, update domain.ArtisanProfileUpdate) (*domain.Artisan, error) {
	var artisan domain.Artisan
	if err := c.do(ctx, http.MethodPut, "/artisan/profile", nil, update, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

// VerifiedArtisans lists every admin-verified artisan.
func (c *Client) VerifiedArtisans(ctx context.Context) ([]domain.Artisan, error) {
	var artisans []domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/artisan/all", nil, nil, &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}

// ArtisanByID fetches a single artisan profile.
func (c *Client) ArtisanByID(ctx context.Context, id string) (*domain.Artisan, error) {
	var artisan domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/artisan/"+id, nil, nil, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

// SearchArtisans filters verified artisans by craft type and/or location.
// Blank filters are omitted from the query.
func (c *Client) SearchArtisans(ctx context.Context, craftType, location string) ([]domain.Artisan, error) {
	query := url.Values{}
	if craftType != "" {
		query.Set("craftType", craftType)
	}
	if location != "" {
		query.Set("location", location)
	}
	var artisans []domain.Artisan
	if err := c.do(ctx, http.MethodGet, "/artisan/search", query, nil, &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}
