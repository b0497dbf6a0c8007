package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/pkg/clock"
)

type stubSessionRepo struct {
	sessions map[string]*domain.Session
	saves    int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}

func (r *stubSessionRepo) Save(_ context.Context, s *domain.Session) error {
	r.saves++
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *stubSessionRepo) UpdateUser(_ context.Context, id string, u *domain.User) error {
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	copy := *u
	s.User = &copy
	return nil
}

func (r *stubSessionRepo) UpdateTokens(_ context.Context, id, access, refresh string) error {
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.AccessToken = access
	s.RefreshToken = refresh
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type stubAuthGateway struct {
	result     *domain.LoginResult
	loginErr   error
	logoutErr  error
	logouts    int
	refreshed  string
	refreshErr error
}

func (g *stubAuthGateway) Login(_ context.Context, username, password string) (*domain.LoginResult, error) {
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.result, nil
}

func (g *stubAuthGateway) Logout(_ context.Context) error {
	g.logouts++
	return g.logoutErr
}

func (g *stubAuthGateway) RefreshToken(_ context.Context, refresh string) (string, error) {
	if g.refreshErr != nil {
		return "", g.refreshErr
	}
	g.refreshed = refresh
	return "rotated-access", nil
}

func testUser() *domain.User {
	return &domain.User{ID: 7, Username: "fatima", Email: "fatima@example.com", FullName: "Fatima", Role: "manager"}
}

func newTestService(repo *stubSessionRepo, auth *stubAuthGateway, clk clock.Clock) *SessionService {
	return NewSessionService(repo, auth, "test-secret", time.Hour, 2*time.Minute, clk, zerolog.Nop())
}

func TestSessionService_Login_PersistsAndRehydrates(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{result: &domain.LoginResult{
		Access:   "acc-1",
		Refresh:  "ref-1",
		User:     testUser(),
		Features: map[string]bool{"reports": true},
	}}
	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	svc := newTestService(repo, auth, clk)

	sess, ticket, err := svc.Login(context.Background(), "fatima", "s3cret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatalf("session not authenticated after login")
	}
	if ticket == "" {
		t.Fatalf("expected a cookie ticket")
	}

	// A later Current with the same ticket must reproduce the same
	// authenticated state from the repository alone.
	got, err := svc.Current(context.Background(), ticket)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.ID != sess.ID || got.AccessToken != "acc-1" || got.RefreshToken != "ref-1" {
		t.Fatalf("rehydrated session differs: %+v", got)
	}
	if got.User == nil || got.User.Username != "fatima" {
		t.Fatalf("rehydrated user differs: %+v", got.User)
	}
	if !got.Features["reports"] {
		t.Fatalf("feature map lost on rehydrate")
	}
}

func TestSessionService_Login_FailureLeavesNoState(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{loginErr: domain.ErrInvalidCredentials}
	svc := newTestService(repo, auth, clock.NewFake(time.Unix(1_700_000_000, 0)))

	_, _, err := svc.Login(context.Background(), "fatima", "wrong-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.sessions) != 0 || repo.saves != 0 {
		t.Fatalf("failed login must not touch the repository")
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestService(newStubSessionRepo(), &stubAuthGateway{}, clock.NewFake(time.Unix(1_700_000_000, 0)))

	if _, _, err := svc.Login(context.Background(), "", "pass123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "fatima", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Logout_ClearsEvenWhenUpstreamFails(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{
		result:    &domain.LoginResult{Access: "acc", Refresh: "ref", User: testUser()},
		logoutErr: errors.New("upstream down"),
	}
	svc := newTestService(repo, auth, clock.NewFake(time.Unix(1_700_000_000, 0)))

	sess, _, err := svc.Login(context.Background(), "fatima", "s3cret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("logout must not fail on upstream error: %v", err)
	}
	if auth.logouts != 1 {
		t.Fatalf("upstream logout not attempted")
	}
	if len(repo.sessions) != 0 {
		t.Fatalf("session not cleared after logout")
	}
}

func TestSessionService_Invalidate_CurrentTokenClears(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{result: &domain.LoginResult{Access: "acc", Refresh: "ref", User: testUser()}}
	svc := newTestService(repo, auth, clock.NewFake(time.Unix(1_700_000_000, 0)))

	sess, _, _ := svc.Login(context.Background(), "fatima", "s3cret1")

	if err := svc.Invalidate(context.Background(), sess.ID, "acc"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Fatalf("session should be gone after invalidate")
	}

	// Idempotent on an already-gone session.
	if err := svc.Invalidate(context.Background(), sess.ID, "acc"); err != nil {
		t.Fatalf("second invalidate should be a no-op: %v", err)
	}
}

func TestSessionService_Invalidate_RotatedTokenIgnored(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{result: &domain.LoginResult{Access: "acc-old", Refresh: "ref", User: testUser()}}
	svc := newTestService(repo, auth, clock.NewFake(time.Unix(1_700_000_000, 0)))

	sess, _, _ := svc.Login(context.Background(), "fatima", "s3cret1")
	if err := svc.RotateTokens(context.Background(), sess.ID, "acc-new", "ref"); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	// A 401 for the pre-rotation token must not log the user out.
	if err := svc.Invalidate(context.Background(), sess.ID, "acc-old"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := repo.sessions[sess.ID]; !ok {
		t.Fatalf("session was cleared for a stale 401")
	}
}

func TestSessionService_SetUser_LeavesTokens(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{result: &domain.LoginResult{Access: "acc", Refresh: "ref", User: testUser()}}
	svc := newTestService(repo, auth, clock.NewFake(time.Unix(1_700_000_000, 0)))

	sess, _, _ := svc.Login(context.Background(), "fatima", "s3cret1")

	updated := testUser()
	updated.FullName = "Fatima A."
	if err := svc.SetUser(context.Background(), sess.ID, updated); err != nil {
		t.Fatalf("set user: %v", err)
	}

	got := repo.sessions[sess.ID]
	if got.User.FullName != "Fatima A." {
		t.Fatalf("profile not replaced")
	}
	if got.AccessToken != "acc" || got.RefreshToken != "ref" {
		t.Fatalf("tokens must be untouched by SetUser")
	}
}

func TestSessionService_Current_BadTicket(t *testing.T) {
	svc := newTestService(newStubSessionRepo(), &stubAuthGateway{}, clock.NewFake(time.Unix(1_700_000_000, 0)))

	if _, err := svc.Current(context.Background(), "not-a-ticket"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Current_ExpiredTicket(t *testing.T) {
	repo := newStubSessionRepo()
	auth := &stubAuthGateway{result: &domain.LoginResult{Access: "acc", Refresh: "ref", User: testUser()}}
	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	svc := newTestService(repo, auth, clk)

	_, ticket, _ := svc.Login(context.Background(), "fatima", "s3cret1")

	clk.Advance(2 * time.Hour) // past the 1h ticket TTL
	if _, err := svc.Current(context.Background(), ticket); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired ticket to be rejected, got %v", err)
	}
}
