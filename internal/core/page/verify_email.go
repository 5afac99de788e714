package page

import (
	"context"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// VerifyEmailForm is the verification page's input. Code is the 6-digit
// value from the verification email; Resend requests a fresh code instead of
// submitting one.
type VerifyEmailForm struct {
	Email  string `validate:"required,email"`
	Code   string
	Resend bool
}

// VerifyEmail confirms a new account's email address. A correct code yields
// the first session credentials and lands on the role's dashboard.
type VerifyEmail struct {
	Deps
}

func NewVerifyEmail(d Deps) *VerifyEmail {
	return &VerifyEmail{Deps: d}
}

func (p *VerifyEmail) Run(ctx context.Context, form VerifyEmailForm) error {
	_, ok, err := p.mount(ctx, guard.AnonymousOnly())
	if err != nil || !ok {
		return err
	}

	// Arriving without an email means the register/login handoff was
	// skipped; send the visitor back to register.
	if form.Email == "" {
		return p.Nav.Go(ctx, domain.RouteRegister, nil)
	}
	if err := checkForm(form); err != nil {
		p.banner(err.Error())
		return nil
	}

	if form.Resend {
		p.println("Resending verification code...")
		message, err := p.Backend.ResendVerification(ctx, form.Email)
		if err != nil {
			p.banner(api.Message(err, "Failed to resend code."))
			return nil
		}
		if message == "" {
			message = "Verification code sent! Please check your email."
		}
		p.println(message)
		return nil
	}

	if len(form.Code) != 6 {
		p.banner("Please enter a valid 6-digit code")
		return nil
	}

	p.println("Verifying...")
	result, err := p.Backend.VerifyEmail(ctx, form.Email, form.Code)
	if err != nil {
		p.banner(api.Message(err, "Verification failed. Please try again."))
		return nil
	}

	if err := p.Session.SetSession(result.Token, result.User); err != nil {
		return err
	}
	p.println("Email verified successfully!")
	return p.Nav.Go(ctx, result.User.DashboardRoute(), nil)
}
