package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, username, password string) (*domain.Session, string, error)
	logoutFn  func(ctx context.Context, s *domain.Session) error
	currentFn func(ctx context.Context, ticket string) (*domain.Session, error)
	setUserFn func(ctx context.Context, sessionID string, u *domain.User) error
}

func (s *stubSessionService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubSessionService) Logout(ctx context.Context, sess *domain.Session) error {
	return s.logoutFn(ctx, sess)
}

func (s *stubSessionService) Current(ctx context.Context, ticket string) (*domain.Session, error) {
	return s.currentFn(ctx, ticket)
}

func (s *stubSessionService) SetUser(ctx context.Context, sessionID string, u *domain.User) error {
	if s.setUserFn != nil {
		return s.setUserFn(ctx, sessionID, u)
	}
	return nil
}

func (s *stubSessionService) RotateTokens(context.Context, string, string, string) error {
	return nil
}

func (s *stubSessionService) Invalidate(context.Context, string, string) error { return nil }

type stubFeedback struct {
	dropped  []string
	toasts   []string
	began    []string
	ended    []string
	redirect string
}

func (f *stubFeedback) Show(sessionID, message string, kind domain.ToastKind, _ time.Duration) domain.Toast {
	f.toasts = append(f.toasts, message)
	return domain.Toast{ID: "t1", Message: message, Kind: kind}
}

func (f *stubFeedback) Success(sid, msg string) domain.Toast {
	return f.Show(sid, msg, domain.ToastSuccess, 0)
}
func (f *stubFeedback) Error(sid, msg string) domain.Toast {
	return f.Show(sid, msg, domain.ToastError, 0)
}
func (f *stubFeedback) Warning(sid, msg string) domain.Toast {
	return f.Show(sid, msg, domain.ToastWarning, 0)
}
func (f *stubFeedback) Info(sid, msg string) domain.Toast {
	return f.Show(sid, msg, domain.ToastInfo, 0)
}

func (f *stubFeedback) Dismiss(string, string) {}
func (f *stubFeedback) Clear(string)           {}

func (f *stubFeedback) Begin(_, message string) string {
	f.began = append(f.began, message)
	return "op1"
}

func (f *stubFeedback) End(_, operationID string) {
	f.ended = append(f.ended, operationID)
}

func (f *stubFeedback) RedirectTo(_, path string) { f.redirect = path }

func (f *stubFeedback) State(string) domain.UIState { return domain.UIState{} }

func (f *stubFeedback) Drop(sessionID string) { f.dropped = append(f.dropped, sessionID) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func authedContext(e *echo.Echo, method, target string, body string, s *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if s != nil {
		req = req.WithContext(domain.WithSession(req.Context(), s))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, string, error) {
			if username != "omar" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Session{
				ID:          "s1",
				User:        &domain.User{ID: 1, Username: "omar", Role: "owner"},
				AccessToken: "acc",
				Features:    map[string]bool{"reports": true},
			}, "ticket123", nil
		},
	}
	handler := NewSessionHandler(stub, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	c, rec := authedContext(e, http.MethodPost, "/session/login", `{"username":"omar","password":"secret1"}`, nil)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "tidesight_session" || cookies[0].Value != "ticket123" {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "omar" || user["role"] != "owner" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestSessionHandler_Login_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	handler := NewSessionHandler(stub, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	c, _ := authedContext(e, http.MethodPost, "/session/login", `{"username":"ab","password":"short"}`, nil)
	err := handler.Login(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Login_BadCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	handler := NewSessionHandler(stub, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	c, _ := authedContext(e, http.MethodPost, "/session/login", `{"username":"omar","password":"wrong123"}`, nil)
	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestSessionHandler_Logout_DropsFeedback(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, s *domain.Session) error {
			if s.ID != "s1" {
				t.Fatalf("unexpected session: %s", s.ID)
			}
			return nil
		},
	}
	feedback := &stubFeedback{}
	handler := NewSessionHandler(stub, feedback, "tidesight_session", 24*time.Hour)

	sess := &domain.Session{ID: "s1", User: &domain.User{ID: 1, Username: "omar", Role: "owner"}, AccessToken: "acc"}
	c, rec := authedContext(e, http.MethodPost, "/session/logout", "", sess)
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(feedback.dropped) != 1 || feedback.dropped[0] != "s1" {
		t.Fatalf("feedback state not dropped: %v", feedback.dropped)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("session cookie not cleared: %+v", cookies)
	}
}

func TestSessionHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewSessionHandler(&stubSessionService{}, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	sess := &domain.Session{
		ID:          "s1",
		User:        &domain.User{ID: 1, Username: "omar", Role: "owner"},
		AccessToken: "acc",
		Features:    map[string]bool{"reports": true},
	}
	c, rec := authedContext(e, http.MethodGet, "/session", "", sess)
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	features, ok := resp["features"].(map[string]any)
	if !ok || features["reports"] != true {
		t.Fatalf("unexpected features: %+v", resp)
	}
}

func TestSessionHandler_Me_Unauthenticated(t *testing.T) {
	e := newEcho()
	handler := NewSessionHandler(&stubSessionService{}, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	c, _ := authedContext(e, http.MethodGet, "/session", "", nil)
	err := handler.Me(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Refresh(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		currentFn: func(ctx context.Context, ticket string) (*domain.Session, error) {
			if ticket != "tk" {
				t.Fatalf("unexpected ticket: %s", ticket)
			}
			return &domain.Session{
				ID:          "s1",
				User:        &domain.User{ID: 1, Username: "omar", Role: "owner"},
				AccessToken: "rotated",
			}, nil
		},
	}
	handler := NewSessionHandler(stub, &stubFeedback{}, "tidesight_session", 24*time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/session/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "tidesight_session", Value: "tk"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
