package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/tidesight2026/tidesight/internal/api/metrics"
	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
	"github.com/tidesight2026/tidesight/pkg/clock"
)

// SessionService implements the session lifecycle on top of a session
// repository and the upstream auth endpoints.
type SessionService struct {
	repo          ports.SessionRepository
	auth          ports.AuthGateway
	secret        []byte
	ttl           time.Duration
	refreshLeeway time.Duration
	clk           clock.Clock
	log           zerolog.Logger
}

func NewSessionService(
	repo ports.SessionRepository,
	auth ports.AuthGateway,
	secret string,
	ttl, refreshLeeway time.Duration,
	clk clock.Clock,
	log zerolog.Logger,
) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		repo:          repo,
		auth:          auth,
		secret:        []byte(secret),
		ttl:           ttl,
		refreshLeeway: refreshLeeway,
		clk:           clk,
		log:           log,
	}
}

func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", err
	}

	id, err := newSessionID()
	if err != nil {
		return nil, "", err
	}

	sess := &domain.Session{
		ID:           id,
		User:         result.User,
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		Features:     result.Features,
		CreatedAt:    s.clk.Now().UTC(),
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	ticket, err := s.issueTicket(id)
	if err != nil {
		_ = s.repo.Delete(ctx, id)
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Inc()
	return sess, ticket, nil
}

func (s *SessionService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.auth.Logout(domain.WithSession(ctx, sess)); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("upstream logout failed")
	}
	if err := s.repo.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	metrics.ActiveSessions.Dec()
	return nil
}

func (s *SessionService) Current(ctx context.Context, ticket string) (*domain.Session, error) {
	id, err := s.parseTicket(ticket)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	sess, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	s.maybeRefresh(ctx, sess)
	return sess, nil
}

func (s *SessionService) SetUser(ctx context.Context, sessionID string, u *domain.User) error {
	return s.repo.UpdateUser(ctx, sessionID, u)
}

func (s *SessionService) RotateTokens(ctx context.Context, sessionID, access, refresh string) error {
	return s.repo.UpdateTokens(ctx, sessionID, access, refresh)
}

func (s *SessionService) Invalidate(ctx context.Context, sessionID, failedToken string) error {
	sess, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	// A 401 earned by a token that has since been rotated is stale;
	// the session is healthy under its new token.
	if failedToken != "" && sess.AccessToken != failedToken {
		s.log.Debug().Str("session_id", sessionID).Msg("ignoring 401 for rotated token")
		return nil
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	metrics.ForcedLogoutsTotal.Inc()
	metrics.ActiveSessions.Dec()
	return nil
}

// maybeRefresh rotates the access token when its exp claim falls inside
// the configured leeway. Failure leaves the session as-is: the next
// upstream 401 applies the global policy anyway.
func (s *SessionService) maybeRefresh(ctx context.Context, sess *domain.Session) {
	if sess.RefreshToken == "" || s.refreshLeeway <= 0 {
		return
	}
	exp, ok := tokenExpiry(sess.AccessToken)
	if !ok || s.clk.Now().Add(s.refreshLeeway).Before(exp) {
		return
	}

	access, err := s.auth.RefreshToken(domain.WithSession(ctx, sess), sess.RefreshToken)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("token refresh failed")
		return
	}
	if err := s.repo.UpdateTokens(ctx, sess.ID, access, sess.RefreshToken); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("persisting rotated token failed")
		return
	}
	sess.AccessToken = access
}

type ticketClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *SessionService) issueTicket(sessionID string) (string, error) {
	now := s.clk.Now()
	claims := ticketClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionService) parseTicket(ticket string) (string, error) {
	claims := &ticketClaims{}
	tkn, err := jwt.ParseWithClaims(ticket, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clk.Now))
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", domain.ErrSessionNotFound
	}
	return claims.SessionID, nil
}

// tokenExpiry reads the exp claim off the upstream access token without
// verifying its signature; the gateway does not hold the upstream
// signing key and only needs the timestamp.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func newSessionID() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
