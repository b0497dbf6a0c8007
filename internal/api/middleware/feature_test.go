package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/permissions"
)

func featureContext(e *echo.Echo, s *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	if s != nil {
		req = req.WithContext(domain.WithSession(req.Context(), s))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionWithRole(role string) *domain.Session {
	return &domain.Session{
		ID:          "s1",
		User:        &domain.User{ID: 1, Username: "u", Role: role},
		AccessToken: "tok",
	}
}

func TestRequireFeatureAllowsOwner(t *testing.T) {
	e := echo.New()
	c, rec := featureContext(e, sessionWithRole("owner"))

	called := false
	handler := RequireFeature(permissions.FeatureReports)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("owner blocked: called=%v code=%d", called, rec.Code)
	}
}

func TestRequireFeatureForbidsViewer(t *testing.T) {
	e := echo.New()
	c, rec := featureContext(e, sessionWithRole("viewer"))

	handler := RequireFeature(permissions.FeatureReports)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("403 must not redirect, got Location %q", loc)
	}
}

func TestRequireFeatureWorkerOperationsOnly(t *testing.T) {
	e := echo.New()

	allowed := RequireFeature(permissions.FeatureDailyOperations)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	c, rec := featureContext(e, sessionWithRole("worker"))
	if err := allowed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("worker on operations: expected 200, got %d", rec.Code)
	}

	denied := RequireFeature(permissions.FeatureAccounting)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	c, rec = featureContext(e, sessionWithRole("worker"))
	if err := denied(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("worker on accounting: expected 403, got %d", rec.Code)
	}
}

func TestRequireFeatureHonorsSubscriptionMap(t *testing.T) {
	e := echo.New()
	s := sessionWithRole("owner")
	s.Features = map[string]bool{permissions.FeatureReports: false}
	c, rec := featureContext(e, s)

	handler := RequireFeature(permissions.FeatureReports)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("plan without reports: expected 403, got %d", rec.Code)
	}
}

func TestRequireFeatureNoSession(t *testing.T) {
	e := echo.New()
	c, rec := featureContext(e, nil)

	handler := RequireFeature(permissions.FeatureReports)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
