package page

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

type stubSession struct {
	sess     domain.Session
	setCalls int
	patches  []domain.UserPatch
	cleared  bool
}

func (s *stubSession) Current() domain.Session { return s.sess }

func (s *stubSession) SetSession(token string, user *domain.User) error {
	s.setCalls++
	s.sess = domain.Session{Token: token, User: user}
	return nil
}

func (s *stubSession) UpdateUser(patch domain.UserPatch) error {
	s.patches = append(s.patches, patch)
	s.sess.User = patch.Apply(s.sess.User)
	return nil
}

func (s *stubSession) Clear() error {
	s.cleared = true
	s.sess = domain.Session{}
	return nil
}

func (s *stubSession) OnChange(func(domain.Session)) func() { return func() {} }

type stubNav struct {
	routes []domain.Route
	params []map[string]string
}

func (n *stubNav) Go(_ context.Context, route domain.Route, params map[string]string) error {
	n.routes = append(n.routes, route)
	n.params = append(n.params, params)
	return nil
}

func (n *stubNav) last() domain.Route {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

type stubConfirmer struct {
	answer  bool
	prompts []string
}

func (c *stubConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

// stubBackend answers only the calls a test installs a function for; every
// other method records nothing and returns zero values.
type stubBackend struct {
	loginFn         func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	verifyEmailFn   func(ctx context.Context, email, code string) (*ports.AuthResult, error)
	registerFn      func(ctx context.Context, input ports.RegisterInput) (string, error)
	profileFn       func(ctx context.Context) (*domain.User, error)
	artisanByIDFn   func(ctx context.Context, id string) (*domain.Artisan, error)
	reviewsFn       func(ctx context.Context, artisanID string) ([]domain.Review, error)
	isUnlockedFn    func(ctx context.Context, artisanID string) (bool, error)
	unlockFn        func(ctx context.Context, artisanID string) (*ports.UnlockResult, error)
	createReviewFn  func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error)
	unverifiedFn    func(ctx context.Context) ([]domain.Artisan, error)
	adminVerifiedFn func(ctx context.Context) ([]domain.Artisan, error)
	usersFn         func(ctx context.Context) ([]domain.User, error)
	verifyArtisanFn func(ctx context.Context, userID string) (string, error)
	uploadFn        func(ctx context.Context, upload ports.PictureUpload) (*ports.PictureResult, error)
	deletePictureFn func(ctx context.Context) (string, error)

	unlockCalls        int
	verifyArtisanCalls int
	uploadCalls        int
}

func (b *stubBackend) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if b.registerFn != nil {
		return b.registerFn(ctx, input)
	}
	return "", nil
}

func (b *stubBackend) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if b.loginFn != nil {
		return b.loginFn(ctx, email, password)
	}
	return &ports.AuthResult{}, nil
}

func (b *stubBackend) VerifyEmail(ctx context.Context, email, code string) (*ports.AuthResult, error) {
	if b.verifyEmailFn != nil {
		return b.verifyEmailFn(ctx, email, code)
	}
	return &ports.AuthResult{}, nil
}

func (b *stubBackend) ResendVerification(context.Context, string) (string, error) { return "", nil }
func (b *stubBackend) ForgotPassword(context.Context, string) (string, error)     { return "", nil }
func (b *stubBackend) ResetPassword(context.Context, string, string) (string, error) {
	return "", nil
}

func (b *stubBackend) Profile(ctx context.Context) (*domain.User, error) {
	if b.profileFn != nil {
		return b.profileFn(ctx)
	}
	return &domain.User{}, nil
}

func (b *stubBackend) OwnArtisanProfile(context.Context) (*domain.Artisan, error) {
	return &domain.Artisan{}, nil
}

func (b *stubBackend) UpdateArtisanProfile(context.Context, domain.ArtisanProfileUpdate) (*domain.Artisan, error) {
	return &domain.Artisan{}, nil
}

func (b *stubBackend) VerifiedArtisans(context.Context) ([]domain.Artisan, error) { return nil, nil }

func (b *stubBackend) ArtisanByID(ctx context.Context, id string) (*domain.Artisan, error) {
	if b.artisanByIDFn != nil {
		return b.artisanByIDFn(ctx, id)
	}
	return &domain.Artisan{ID: id}, nil
}

func (b *stubBackend) SearchArtisans(context.Context, string, string) ([]domain.Artisan, error) {
	return nil, nil
}

func (b *stubBackend) UnverifiedArtisans(ctx context.Context) ([]domain.Artisan, error) {
	if b.unverifiedFn != nil {
		return b.unverifiedFn(ctx)
	}
	return nil, nil
}

func (b *stubBackend) AdminVerifiedArtisans(ctx context.Context) ([]domain.Artisan, error) {
	if b.adminVerifiedFn != nil {
		return b.adminVerifiedFn(ctx)
	}
	return nil, nil
}

func (b *stubBackend) VerifyArtisan(ctx context.Context, userID string) (string, error) {
	b.verifyArtisanCalls++
	if b.verifyArtisanFn != nil {
		return b.verifyArtisanFn(ctx, userID)
	}
	return "", nil
}

func (b *stubBackend) UnverifyArtisan(context.Context, string) (string, error) { return "", nil }

func (b *stubBackend) Users(ctx context.Context) ([]domain.User, error) {
	if b.usersFn != nil {
		return b.usersFn(ctx)
	}
	return nil, nil
}

func (b *stubBackend) DeleteUser(context.Context, string) (string, error) { return "", nil }

func (b *stubBackend) Subscribe(context.Context, string) (*ports.SubscribeResult, error) {
	return &ports.SubscribeResult{}, nil
}

func (b *stubBackend) SubscriptionStatus(context.Context) (*domain.Subscription, error) {
	return &domain.Subscription{}, nil
}

func (b *stubBackend) CancelSubscription(context.Context) (string, error) { return "", nil }

func (b *stubBackend) CreateReview(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if b.createReviewFn != nil {
		return b.createReviewFn(ctx, input)
	}
	return &domain.Review{}, nil
}

func (b *stubBackend) ArtisanReviews(ctx context.Context, artisanID string) ([]domain.Review, error) {
	if b.reviewsFn != nil {
		return b.reviewsFn(ctx, artisanID)
	}
	return nil, nil
}

func (b *stubBackend) MyReviews(context.Context) ([]domain.Review, error) { return nil, nil }

func (b *stubBackend) UpdateReview(context.Context, string, int, string) (*domain.Review, error) {
	return &domain.Review{}, nil
}

func (b *stubBackend) DeleteReview(context.Context, string) error { return nil }

func (b *stubBackend) UnlockContact(ctx context.Context, artisanID string) (*ports.UnlockResult, error) {
	b.unlockCalls++
	if b.unlockFn != nil {
		return b.unlockFn(ctx, artisanID)
	}
	return &ports.UnlockResult{}, nil
}

func (b *stubBackend) MyUnlockedContacts(context.Context) ([]domain.UnlockedContact, error) {
	return nil, nil
}

func (b *stubBackend) IsUnlocked(ctx context.Context, artisanID string) (bool, error) {
	if b.isUnlockedFn != nil {
		return b.isUnlockedFn(ctx, artisanID)
	}
	return false, nil
}

func (b *stubBackend) UploadProfilePicture(ctx context.Context, upload ports.PictureUpload) (*ports.PictureResult, error) {
	b.uploadCalls++
	if b.uploadFn != nil {
		return b.uploadFn(ctx, upload)
	}
	return &ports.PictureResult{}, nil
}

func (b *stubBackend) DeleteProfilePicture(ctx context.Context) (string, error) {
	if b.deletePictureFn != nil {
		return b.deletePictureFn(ctx)
	}
	return "", nil
}

var _ ports.Backend = (*stubBackend)(nil)

type testEnv struct {
	backend *stubBackend
	session *stubSession
	confirm *stubConfirmer
	nav     *stubNav
	out     *bytes.Buffer
}

func newTestEnv(sess domain.Session) (*testEnv, Deps) {
	env := &testEnv{
		backend: &stubBackend{},
		session: &stubSession{sess: sess},
		confirm: &stubConfirmer{},
		nav:     &stubNav{},
		out:     &bytes.Buffer{},
	}
	deps := Deps{
		Backend: env.backend,
		Session: env.session,
		Confirm: env.confirm,
		Nav:     env.nav,
		Origin:  "http://localhost:5000",
		Out:     env.out,
		Logger:  zerolog.Nop(),
	}
	return env, deps
}

func clientSession(credits int, status string) domain.Session {
	return domain.Session{
		Token: "tok-client",
		User: &domain.User{
			ID:         "u1",
			Name:       "Cleo",
			Email:      "cleo@example.com",
			Role:       domain.RoleClient,
			IsVerified: true,
			Subscription: &domain.Subscription{
				Plan:             "basic-monthly",
				Status:           status,
				UnlockedContacts: credits,
			},
		},
	}
}
