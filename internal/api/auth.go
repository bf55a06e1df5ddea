package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// User identifies an authenticated account.
type User struct {
	Name  string `json:"username"`
	Email string `json:"email"`
}

// LoginResult is the token and account returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

var errMissingCredentials = errors.New("email and password are required")

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, errMissingCredentials
	}
	body := map[string]string{"email": email, "password": password}
	var res LoginResult
	if err := c.send(ctx, http.MethodPost, "/auth/login", body, &res); err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		return LoginResult{}, errors.New("login: backend returned no token")
	}
	if res.User.Email == "" {
		res.User.Email = email
	}
	return res, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return errors.New("username, email and password are required")
	}
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.send(ctx, http.MethodPost, "/auth/register", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// ForgotPassword asks the backend to mail a reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	body := map[string]string{"email": email}
	if err := c.send(ctx, http.MethodPost, "/auth/forgot-password", body, nil); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

// VerifyResetCode checks the mailed reset code before allowing a
// password change.
func (c *Client) VerifyResetCode(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return errors.New("email and reset code are required")
	}
	body := map[string]string{"email": email, "resetCode": code}
	if err := c.send(ctx, http.MethodPost, "/auth/verify-reset-code", body, nil); err != nil {
		return fmt.Errorf("verify reset code: %w", err)
	}
	return nil
}

// ResetPassword sets a new password after code verification.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return errors.New("email and new password are required")
	}
	body := map[string]string{"email": email, "newPassword": newPassword}
	if err := c.send(ctx, http.MethodPost, "/auth/reset-password", body, nil); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
