package domain

import "time"

// ReviewAuthor is the populated client reference on a review.
type ReviewAuthor struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ReviewArtisan is the populated artisan reference on a review, present in
// my-reviews listings so the reviewer can navigate back to the profile.
type ReviewArtisan struct {
	ID        string      `json:"_id,omitempty"`
	User      ArtisanUser `json:"userId,omitempty"`
	CraftType string      `json:"craftType,omitempty"`
}

// Review of an artisan by a client. Ratings run 1..5.
type Review struct {
	ID        string         `json:"_id"`
	Client    ReviewAuthor   `json:"clientId,omitempty"`
	Artisan   *ReviewArtisan `json:"artisanId,omitempty"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
}
