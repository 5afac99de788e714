// Package ports defines the interfaces the page controllers are composed
// from: the backend API boundary, the session store, and the small UI
// capabilities (confirmation, navigation). Pages depend on these interfaces
// only, never on concrete adapters.
package ports

import (
	"context"

	"github.com/craftlink/craftlink/internal/core/domain"
)

// RegisterInput carries a new account registration. The craft fields are
// required only for the artisan role.
type RegisterInput struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	Role       string   `json:"role" validate:"required,oneof=client artisan"`
	Phone      string   `json:"phone" validate:"required"`
	CraftType  string   `json:"craftType,omitempty"`
	Experience int      `json:"experience,omitempty"`
	Location   string   `json:"location,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// AuthResult is the backend's answer to login and email verification: the
// bearer token plus the account record it authenticates.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Register(ctx context.Context, input RegisterInput) (message string, err error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, email, code string) (*AuthResult, error)
	ResendVerification(ctx context.Context, email string) (message string, err error)
	ForgotPassword(ctx context.Context, email string) (message string, err error)
	ResetPassword(ctx context.Context, token, newPassword string) (message string, err error)
	Profile(ctx context.Context) (*domain.User, error)
}

// ArtisanAPI covers the /artisan endpoints.
type ArtisanAPI interface {
	OwnArtisanProfile(ctx context.Context) (*domain.Artisan, error)
	UpdateArtisanProfile(ctx context.Context, update domain.ArtisanProfileUpdate) (*domain.Artisan, error)
	VerifiedArtisans(ctx context.Context) ([]domain.Artisan, error)
	ArtisanByID(ctx context.Context, id string) (*domain.Artisan, error)
	SearchArtisans(ctx context.Context, craftType, location string) ([]domain.Artisan, error)
}

// AdminAPI covers the /admin endpoints.
type AdminAPI interface {
	UnverifiedArtisans(ctx context.Context) ([]domain.Artisan, error)
	AdminVerifiedArtisans(ctx context.Context) ([]domain.Artisan, error)
	VerifyArtisan(ctx context.Context, userID string) (message string, err error)
	UnverifyArtisan(ctx context.Context, userID string) (message string, err error)
	Users(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string) (message string, err error)
}

// SubscribeResult is returned by a successful plan purchase. User is the
// refreshed account record the caller persists into the session.
type SubscribeResult struct {
	Message string
	User    *domain.User
}

// SubscriptionAPI covers the /subscription endpoints.
type SubscriptionAPI interface {
	Subscribe(ctx context.Context, plan string) (*SubscribeResult, error)
	SubscriptionStatus(ctx context.Context) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context) (message string, err error)
}

// CreateReviewInput carries a new review submission.
type CreateReviewInput struct {
	ArtisanID string `json:"artisanId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// ReviewAPI covers the /reviews endpoints.
type ReviewAPI interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ArtisanReviews(ctx context.Context, artisanID string) ([]domain.Review, error)
	MyReviews(ctx context.Context) ([]domain.Review, error)
	UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

// UnlockResult is returned by a successful contact unlock.
// RemainingContacts is the authoritative credit balance after the spend.
type UnlockResult struct {
	Message           string
	RemainingContacts int
	Artisan           *domain.Artisan
}

// ContactAPI covers the /unlocked-contacts endpoints.
type ContactAPI interface {
	UnlockContact(ctx context.Context, artisanID string) (*UnlockResult, error)
	MyUnlockedContacts(ctx context.Context) ([]domain.UnlockedContact, error)
	IsUnlocked(ctx context.Context, artisanID string) (bool, error)
}

// PictureUpload is a profile-picture file held in memory, already past the
// client-side type and size checks.
type PictureUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PictureResult is returned by upload and delete; User carries the refreshed
// account record when the backend includes one.
type PictureResult struct {
	Message        string
	ProfilePicture string
	User           *domain.User
}

// PictureAPI covers the /profile-picture endpoints.
type PictureAPI interface {
	UploadProfilePicture(ctx context.Context, upload PictureUpload) (*PictureResult, error)
	DeleteProfilePicture(ctx context.Context) (message string, err error)
}

// Backend is the single HTTP boundary to the marketplace API. All network
// access in the client passes through an implementation of this interface.
type Backend interface {
	AuthAPI
	ArtisanAPI
	AdminAPI
	SubscriptionAPI
	ReviewAPI
	ContactAPI
	PictureAPI
}
