package domain

import (
	"context"
	"time"
)

// Session is the authenticated state the gateway keeps per browser: the
// cached profile, the bearer tokens for upstream calls, and the
// subscription feature map asserted at login. One redis key holds the
// whole thing, written and cleared as a unit.
type Session struct {
	ID           string          `json:"id"`
	User         *User           `json:"user,omitempty"`
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Features     map[string]bool `json:"features,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Authenticated reports whether the session carries both a profile and
// an access token. Both or neither: a session missing either is treated
// as logged out.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.AccessToken != ""
}

// Role returns the session user's role, or the empty string when
// unauthenticated.
func (s *Session) Role() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}

// LoginCredentials is the login form payload. The constraints match the
// frontend form schema.
type LoginCredentials struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResult is the upstream login response: a token pair, the
// profile, and optionally the subscription's feature map.
type LoginResult struct {
	Access   string          `json:"access"`
	Refresh  string          `json:"refresh"`
	User     *User           `json:"user"`
	Features map[string]bool `json:"features,omitempty"`
}

type sessionCtxKey struct{}

// WithSession returns a context carrying the session. The request
// middleware stores it; the upstream client and handlers read it.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom extracts the session stored by WithSession, or nil.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return s
}
