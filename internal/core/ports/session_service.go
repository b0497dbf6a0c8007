package ports

import (
	"context"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// SessionService drives the session lifecycle: who is logged in and the
// tokens needed to call the upstream API.
type SessionService interface {
	// Login authenticates upstream and persists a new session. It
	// returns the session and the signed cookie ticket that references
	// it. Upstream failure leaves no state behind.
	Login(ctx context.Context, username, password string) (*domain.Session, string, error)

	// Logout revokes upstream best-effort, then unconditionally clears
	// the persisted session.
	Logout(ctx context.Context, s *domain.Session) error

	// Current resolves a cookie ticket to its live session,
	// transparently rotating the access token when it is close to
	// expiry.
	Current(ctx context.Context, ticket string) (*domain.Session, error)

	// SetUser replaces the cached profile without touching tokens.
	SetUser(ctx context.Context, sessionID string, u *domain.User) error

	// RotateTokens swaps the token pair without touching the profile.
	RotateTokens(ctx context.Context, sessionID, access, refresh string) error

	// Invalidate clears the session in response to an upstream 401,
	// but only when failedToken still matches the stored access token.
	// A 401 earned by a token that has since been rotated is ignored.
	Invalidate(ctx context.Context, sessionID, failedToken string) error
}
