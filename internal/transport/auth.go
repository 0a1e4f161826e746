package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/termstate/internal/model"
)

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := get[tokenResponse](ctx, c, http.MethodPost, body, "auth", "token")
	return resp.AccessToken, err
}

// Signup creates an account and returns its session token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	resp, err := get[tokenResponse](ctx, c, http.MethodPost, body, "auth", "signup")
	return resp.AccessToken, err
}

// ExchangeProviderCode trades an identity provider's authorization code for a
// session token.
func (c *Client) ExchangeProviderCode(ctx context.Context, provider, code, redirectURL string) (string, error) {
	body := map[string]string{"code": code, "redirectUrl": redirectURL}
	resp, err := get[tokenResponse](ctx, c, http.MethodPost, body, "auth", "token", provider)
	return resp.AccessToken, err
}

func (c *Client) ListAuthProviders(ctx context.Context) ([]model.AuthProvider, error) {
	return get[[]model.AuthProvider](ctx, c, http.MethodGet, nil, "auth", "providers")
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, map[string]string{"email": email}, nil, "auth", "forgot-password")
}

func (c *Client) ResetPassword(ctx context.Context, email, token, password string) error {
	body := map[string]string{"email": email, "token": token, "password": password}
	return c.do(ctx, http.MethodPost, body, nil, "auth", "reset-password")
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, body, nil, "auth", "change-password")
}

func (c *Client) GetMe(ctx context.Context) (*model.User, error) {
	return ptr[model.User](ctx, c, http.MethodGet, nil, "users", "me")
}

func (c *Client) UpdateMe(ctx context.Context, name, email string) (*model.User, error) {
	body := map[string]string{"name": name, "email": email}
	return ptr[model.User](ctx, c, http.MethodPatch, body, "users", "me")
}

func (c *Client) DeleteMe(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "users", "me")
}
