package api

import (
	"context"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// CreateReview submits a new review for an artisan.
func (c *Client) CreateReview(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ArtisanReviews lists the reviews left for one artisan.
func (c *Client) ArtisanReviews(ctx context.Context, artisanID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/artisan/"+artisanID, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MyReviews lists the reviews the caller has written.
func (c *Client) MyReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/my-reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview edits the rating and comment of an existing review.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*domain.Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var review domain.Review
	if err := c.do(ctx, http.MethodPut, "/reviews/"+reviewID, nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes one of the caller's reviews.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+reviewID, nil, nil, nil)
}
