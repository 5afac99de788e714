package page

import (
	"context"
	"strings"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// RegisterForm is the registration page's input. The craft fields are
// required for the artisan role only; Skills is the raw comma-separated
// value the user typed.
type RegisterForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	Role            string `validate:"required,oneof=client artisan"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	CraftType       string `validate:"required_if=Role artisan"`
	Experience      int    `validate:"required_if=Role artisan,min=0"`
	Location        string `validate:"required_if=Role artisan"`
	Bio             string
	Skills          string
}

// Register is the account-creation page. Success hands off to the
// email-verification page carrying the submitted email.
type Register struct {
	Deps
}

func NewRegister(d Deps) *Register {
	return &Register{Deps: d}
}

func (p *Register) Run(ctx context.Context, form RegisterForm) error {
	_, ok, err := p.mount(ctx, guard.AnonymousOnly())
	if err != nil || !ok {
		return err
	}

	if err := checkForm(form); err != nil {
		p.banner(err.Error())
		return nil
	}

	input := ports.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
		Phone:    form.Phone,
	}
	if form.Role == domain.RoleArtisan {
		input.CraftType = form.CraftType
		input.Experience = form.Experience
		input.Location = form.Location
		input.Bio = form.Bio
		input.Skills = splitSkills(form.Skills)
	}

	p.println("Creating account...")
	message, err := p.Backend.Register(ctx, input)
	if err != nil {
		p.banner(api.Message(err, "Registration failed. Please try again."))
		return nil
	}
	if message != "" {
		p.println(message)
	}
	return p.Nav.Go(ctx, domain.RouteVerifyEmail, map[string]string{ParamEmail: form.Email})
}

// splitSkills turns a comma-separated list into trimmed entries, dropping
// empties.
func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
