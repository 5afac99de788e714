package api

import (
	"context"
	"net/http"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// authPayload is the flattened account document the backend returns from
// login and email verification: the user record with the token and
// verification flag alongside.
type authPayload struct {
	domain.User
	Token      string `json:"token"`
	IsVerified bool   `json:"isVerified"`
}

func (p *authPayload) result() *ports.AuthResult {
	user := p.User
	user.IsVerified = p.IsVerified
	return &ports.AuthResult{Token: p.Token, User: &user}
}

// Register creates a new account. The backend answers with a message telling
// the user to check their inbox for the verification code.
func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return nil, err
	}
	return payload.result(), nil
}

// VerifyEmail submits the 6-digit code and receives the first session
// credentials on success.
func (c *Client) VerifyEmail(ctx context.Context, email, code string) (*ports.AuthResult, error) {
	body := map[string]string{"email": email, "verificationCode": code}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email", nil, body, &payload); err != nil {
		return nil, err
	}
	return payload.result(), nil
}

// ResendVerification asks the backend to email a fresh code.
func (c *Client) ResendVerification(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/resend-verification", nil, map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ForgotPassword requests a password-reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword sets a new password using the reset token from the email.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	body := map[string]string{"token": token, "newPassword": newPassword}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Profile fetches the authenticated account record.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
