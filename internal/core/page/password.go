package page

import (
	"context"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// ForgotPasswordForm requests a reset email.
type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

// ForgotPassword is the reset-request page.
type ForgotPassword struct {
	Deps
}

func NewForgotPassword(d Deps) *ForgotPassword {
	return &ForgotPassword{Deps: d}
}

func (p *ForgotPassword) Run(ctx context.Context, form ForgotPasswordForm) error {
	_, ok, err := p.mount(ctx, guard.AnonymousOnly())
	if err != nil || !ok {
		return err
	}
	if err := checkForm(form); err != nil {
		p.banner(err.Error())
		return nil
	}

	message, err := p.Backend.ForgotPassword(ctx, form.Email)
	if err != nil {
		p.banner(api.Message(err, "Failed to send reset email. Please try again."))
		return nil
	}
	if message == "" {
		message = "If that email is registered, a reset link is on its way."
	}
	p.println(message)
	return nil
}

// ResetPasswordForm carries the reset token from the email plus the new
// password, confirmed.
type ResetPasswordForm struct {
	Token           string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// ResetPassword completes the reset flow and returns the user to login.
type ResetPassword struct {
	Deps
}

func NewResetPassword(d Deps) *ResetPassword {
	return &ResetPassword{Deps: d}
}

func (p *ResetPassword) Run(ctx context.Context, form ResetPasswordForm) error {
	_, ok, err := p.mount(ctx, guard.AnonymousOnly())
	if err != nil || !ok {
		return err
	}
	if err := checkForm(form); err != nil {
		p.banner(err.Error())
		return nil
	}

	message, err := p.Backend.ResetPassword(ctx, form.Token, form.NewPassword)
	if err != nil {
		p.banner(api.Message(err, "Password reset failed. The link may have expired."))
		return nil
	}
	if message == "" {
		message = "Password reset successfully. Please log in."
	}
	p.println(message)
	return p.Nav.Go(ctx, domain.RouteLogin, nil)
}
