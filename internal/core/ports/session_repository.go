package ports

import (
	"context"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// SessionRepository persists browser sessions. A session is written and
// deleted as a single unit; partial updates touch only the named
// fields.
type SessionRepository interface {
	// Save stores the whole session, replacing any previous state
	// under the same id.
	Save(ctx context.Context, s *domain.Session) error

	// Find loads a session by id. Returns domain.ErrSessionNotFound
	// when the id resolves to nothing.
	Find(ctx context.Context, id string) (*domain.Session, error)

	// UpdateUser replaces the cached profile, leaving tokens alone.
	UpdateUser(ctx context.Context, id string, u *domain.User) error

	// UpdateTokens rotates the token pair, leaving the profile alone.
	UpdateTokens(ctx context.Context, id, access, refresh string) error

	// Delete removes the session. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id string) error
}
