package page

import (
	"context"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
)

// LoginForm is the login page's input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login is the login page: authenticate, persist the session, and land on
// the role's dashboard. An unverified account is sent to the verification
// page with its email carried along and no token persisted.
type Login struct {
	Deps
}

func NewLogin(d Deps) *Login {
	return &Login{Deps: d}
}

func (p *Login) Run(ctx context.Context, form LoginForm) error {
	_, ok, err := p.mount(ctx, guard.AnonymousOnly())
	if err != nil || !ok {
		return err
	}

	if err := checkForm(form); err != nil {
		p.banner(err.Error())
		return nil
	}

	p.println("Logging in...")
	result, err := p.Backend.Login(ctx, form.Email, form.Password)
	if err != nil {
		p.banner(api.Message(err, "Login failed. Please check your credentials."))
		return nil
	}

	if !result.User.IsVerified {
		p.banner("Please verify your email first. Check your inbox for the verification code.")
		return p.Nav.Go(ctx, domain.RouteVerifyEmail, map[string]string{ParamEmail: form.Email})
	}

	if err := p.Session.SetSession(result.Token, result.User); err != nil {
		return err
	}
	p.printf("Welcome back, %s!\n", result.User.Name)
	return p.Nav.Go(ctx, result.User.DashboardRoute(), nil)
}
