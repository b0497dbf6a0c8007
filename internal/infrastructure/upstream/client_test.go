package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/pkg/clock"
)

type unauthorizedRecorder struct {
	mu     sync.Mutex
	tokens []string
	paths  []string
}

func (r *unauthorizedRecorder) onUnauthorized(_ context.Context, failedToken string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, failedToken)
}

func (r *unauthorizedRecorder) navigate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func newTestClient(t *testing.T, srv *httptest.Server, clk clock.Clock, rec *unauthorizedRecorder) *Client {
	t.Helper()
	cfg := Config{
		BaseURL:       srv.URL,
		HTTPClient:    srv.Client(),
		Log:           zerolog.Nop(),
		Clock:         clk,
		RedirectDelay: time.Second,
	}
	if rec != nil {
		cfg.OnUnauthorized = rec.onUnauthorized
		cfg.Navigate = rec.navigate
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func sessionCtx(token string) context.Context {
	return domain.WithSession(context.Background(), &domain.Session{
		ID:          "s1",
		User:        &domain.User{ID: 1, Username: "omar", Role: "owner"},
		AccessToken: token,
	})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Pond{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	if _, err := c.Ponds(sessionCtx("tok-abc")); err != nil {
		t.Fatalf("Ponds() error: %v", err)
	}
	if got != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok-abc")
	}
}

func TestClientWithoutSessionSendsNoToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.HealthCheck{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if got != "" {
		t.Errorf("Authorization = %q, want empty", got)
	}
}

func TestClientUnauthorizedPolicy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	rec := &unauthorizedRecorder{}
	c := newTestClient(t, srv, clk, rec)

	_, err := c.DashboardStats(sessionCtx("stale-token"))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("error = %v, want ErrUnauthenticated", err)
	}
	if len(rec.tokens) != 1 || rec.tokens[0] != "stale-token" {
		t.Errorf("unauthorized hook tokens = %v, want [stale-token]", rec.tokens)
	}
	if len(rec.paths) != 0 {
		t.Errorf("navigation fired before the delay: %v", rec.paths)
	}

	clk.Advance(time.Second)
	if len(rec.paths) != 1 || rec.paths[0] != "/login" {
		t.Errorf("navigation = %v, want [/login]", rec.paths)
	}
}

func TestClientForbiddenIsLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	clk := clock.NewFake(time.Now())
	rec := &unauthorizedRecorder{}
	c := newTestClient(t, srv, clk, rec)

	_, err := c.Tenants(sessionCtx("tok"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	clk.Advance(time.Minute)
	if len(rec.tokens) != 0 || len(rec.paths) != 0 {
		t.Errorf("403 must not trigger the 401 policy: tokens=%v paths=%v", rec.tokens, rec.paths)
	}
}

func TestClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	if _, err := c.Pond(sessionCtx("tok"), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"detail": "db down"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	if _, err := c.Batches(sessionCtx("tok")); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
}

func TestClientOtherStatusCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "journal entry is not balanced"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	_, err := c.CreateJournalEntry(sessionCtx("tok"), &domain.JournalEntryInput{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want 422", statusErr.StatusCode)
	}
	if statusErr.Message != "journal entry is not balanced" {
		t.Errorf("Message = %q", statusErr.Message)
	}
}

func TestClientLoginRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "omar" || creds["password"] != "secret1" {
			t.Errorf("credentials = %v", creds)
		}
		json.NewEncoder(w).Encode(domain.LoginResult{
			Access:  "acc",
			Refresh: "ref",
			User:    &domain.User{ID: 7, Username: "omar", Role: "owner"},
			Features: map[string]bool{
				"reports": true,
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	res, err := c.Login(context.Background(), "omar", "secret1")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if res.Access != "acc" || res.Refresh != "ref" {
		t.Errorf("tokens = %q/%q", res.Access, res.Refresh)
	}
	if res.User == nil || res.User.Username != "omar" {
		t.Errorf("user = %+v", res.User)
	}
	if !res.Features["reports"] {
		t.Errorf("features = %v", res.Features)
	}
}

func TestClientQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]domain.FeedingLog{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	if _, err := c.FeedingLogs(sessionCtx("tok"), 19); err != nil {
		t.Fatalf("FeedingLogs() error: %v", err)
	}
	if gotQuery != "batch_id=19" {
		t.Errorf("query = %q, want batch_id=19", gotQuery)
	}
}

func TestClientInvoicePDF(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sales/invoices/3/pdf" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/pdf" {
			t.Errorf("Accept = %q", accept)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, clock.Real(), nil)
	got, err := c.InvoicePDF(sessionCtx("tok"), 3)
	if err != nil {
		t.Fatalf("InvoicePDF() error: %v", err)
	}
	if string(got) != string(pdf) {
		t.Errorf("body = %q", got)
	}
}
