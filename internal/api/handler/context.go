package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

// currentSession extracts the session injected by the session guard
// and fast-fails before any upstream call. Presence proves the guard
// ran; a guarded route reached without one is a wiring bug surfaced as
// a 401 rather than a panic downstream.
func currentSession(c echo.Context) (*domain.Session, error) {
	s := domain.SessionFrom(c.Request().Context())
	if !s.Authenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return s, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// track wraps a mutation in the session's in-flight tracker so the
// busy indicator covers the whole upstream round trip.
func track(c echo.Context, feedback ports.FeedbackService, message string, fn func() error) error {
	s := domain.SessionFrom(c.Request().Context())
	if s != nil && feedback != nil {
		opID := feedback.Begin(s.ID, message)
		defer feedback.End(s.ID, opID)
	}
	return fn()
}

// notify queues a success toast when the session is known.
func notify(c echo.Context, feedback ports.FeedbackService, message string) {
	s := domain.SessionFrom(c.Request().Context())
	if s != nil && feedback != nil {
		feedback.Success(s.ID, message)
	}
}
