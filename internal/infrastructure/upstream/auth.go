package upstream

import (
	"context"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// Login exchanges credentials for a token pair and the user profile.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out domain.LoginResult
	if err := c.post(ctx, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the tokens of the session carried by ctx.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil, nil)
}

// RefreshToken exchanges a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	body := map[string]string{"refresh": refresh}
	var out struct {
		Access string `json:"access"`
	}
	if err := c.post(ctx, "/auth/refresh", nil, body, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

// CurrentUser fetches the profile behind the session's access token.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
