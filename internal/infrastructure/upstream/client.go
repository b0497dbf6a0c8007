// Package upstream is the single point of outbound HTTP to the
// Tidesight ERP backend. Every domain call in the gateway goes through
// one Client, which attaches the session's bearer token on the way out
// and applies one uniform failure policy on the way back.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidesight2026/tidesight/internal/api/metrics"
	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/pkg/clock"
)

const loginPath = "/login"

// Config assembles a Client.
type Config struct {
	// BaseURL is the ERP origin; "/api" is appended to every path.
	BaseURL string

	// HTTPClient overrides the transport. Defaults to http.Client with
	// the bearer round-tripper over http.DefaultTransport.
	HTTPClient *http.Client

	Log   zerolog.Logger
	Clock clock.Clock

	// RedirectDelay is how long after a 401 the forced navigation to
	// the login page fires. The pause lets the failing page render its
	// own error first.
	RedirectDelay time.Duration

	// OnUnauthorized runs on every upstream 401 with the bearer token
	// the rejected request carried. Wired to session invalidation.
	OnUnauthorized func(ctx context.Context, failedToken string)

	// Navigate schedules the forced navigation after RedirectDelay.
	// Wired to the feedback redirect channel.
	Navigate func(ctx context.Context, path string)
}

// Client calls the upstream ERP API. All methods are one synchronous
// round trip: no retries, no caching, no idempotency keys.
type Client struct {
	base           string
	http           *http.Client
	log            zerolog.Logger
	clk            clock.Clock
	redirectDelay  time.Duration
	onUnauthorized func(ctx context.Context, failedToken string)
	navigate       func(ctx context.Context, path string)
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("upstream: invalid base URL %q", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc.Transport = &bearerTransport{next: next}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real()
	}

	return &Client{
		base:           strings.TrimRight(base.String(), "/") + "/api",
		http:           hc,
		log:            cfg.Log,
		clk:            clk,
		redirectDelay:  cfg.RedirectDelay,
		onUnauthorized: cfg.OnUnauthorized,
		navigate:       cfg.Navigate,
	}, nil
}

// bearerTransport attaches the session's access token to every
// outgoing request. Requests without a session go out unauthenticated
// and the server rejects them where auth is required.
type bearerTransport struct {
	next http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if s := domain.SessionFrom(req.Context()); s != nil && s.AccessToken != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}
	return t.next.RoundTrip(req)
}

// StatusError carries an upstream rejection that has no dedicated
// sentinel: the server's own message plus the status code, surfaced
// once to the caller.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.check(ctx, resp, method, path); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any, accept string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)

	start := c.clk.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(c.clk.Now().Sub(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrUpstream, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// check applies the global response policy. 401 clears the session and
// schedules the forced navigation; 403 and everything else pass
// through as typed errors for the caller to handle.
func (c *Client) check(ctx context.Context, resp *http.Response, method, path string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.forceLogout(ctx)
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrUnauthenticated)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrForbidden)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)

	case resp.StatusCode >= 500:
		msg := apiMessage(resp.Body)
		c.log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", msg).
			Msg("upstream server error")
		return fmt.Errorf("%s %s: %w: %s", method, path, domain.ErrUpstream, msg)

	default:
		return &StatusError{StatusCode: resp.StatusCode, Message: apiMessage(resp.Body)}
	}
}

func (c *Client) forceLogout(ctx context.Context) {
	var failedToken string
	if s := domain.SessionFrom(ctx); s != nil {
		failedToken = s.AccessToken
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx, failedToken)
	}
	if c.navigate != nil {
		// Detach: the navigation outlives the request that earned it.
		nav := c.navigate
		c.clk.AfterFunc(c.redirectDelay, func() {
			nav(context.WithoutCancel(ctx), loginPath)
		})
	}
}

// apiMessage extracts the server-provided message from an error
// payload, trying the envelope shapes the backend uses.
func apiMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no detail"
	}
	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Detail != "" {
			return envelope.Detail
		}
	}
	return strings.TrimSpace(string(raw))
}
