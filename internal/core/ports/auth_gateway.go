package ports

import (
	"context"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// AuthGateway is the slice of the upstream ERP API the session
// lifecycle needs.
type AuthGateway interface {
	// Login exchanges credentials for a token pair and profile.
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)

	// Logout revokes the tokens of the session carried by ctx.
	// Best-effort on the caller's side: a failure here never blocks a
	// local logout.
	Logout(ctx context.Context) error

	// RefreshToken exchanges a refresh token for a fresh access token.
	RefreshToken(ctx context.Context, refresh string) (string, error)
}
