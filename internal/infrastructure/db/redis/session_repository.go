package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

const (
	fieldUser      = "user"
	fieldAccess    = "access_token"
	fieldRefresh   = "refresh_token"
	fieldFeatures  = "features"
	fieldCreatedAt = "created_at"
)

// SessionRepository stores each session as one Redis hash under
// session:<id>. The whole key carries the session TTL and is deleted as
// a unit, which is what makes "cleared on logout or 401" atomic.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	featJSON, err := json.Marshal(s.Features)
	if err != nil {
		return fmt.Errorf("encode session features: %w", err)
	}

	key := r.key(s.ID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldUser, string(userJSON),
		fieldAccess, s.AccessToken,
		fieldRefresh, s.RefreshToken,
		fieldFeatures, string(featJSON),
		fieldCreatedAt, s.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	s := &domain.Session{
		ID:           id,
		AccessToken:  fields[fieldAccess],
		RefreshToken: fields[fieldRefresh],
	}
	if raw := fields[fieldUser]; raw != "" && raw != "null" {
		var u domain.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, fmt.Errorf("decode session user: %w", err)
		}
		s.User = &u
	}
	if raw := fields[fieldFeatures]; raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), &s.Features); err != nil {
			return nil, fmt.Errorf("decode session features: %w", err)
		}
	}
	if raw := fields[fieldCreatedAt]; raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			s.CreatedAt = t
		}
	}
	return s, nil
}

func (r *SessionRepository) UpdateUser(ctx context.Context, id string, u *domain.User) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := r.client.HSet(ctx, r.key(id), fieldUser, string(userJSON)).Err(); err != nil {
		return fmt.Errorf("update session user: %w", err)
	}
	return nil
}

func (r *SessionRepository) UpdateTokens(ctx context.Context, id, access, refresh string) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	if err := r.client.HSet(ctx, r.key(id), fieldAccess, access, fieldRefresh, refresh).Err(); err != nil {
		return fmt.Errorf("update session tokens: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) exists(ctx context.Context, id string) error {
	n, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) key(id string) string {
	return "session:" + id
}
