package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/ports"
)

// UIHandler exposes the per-session feedback center the page shell
// polls: the busy indicator, the toast queue, and pending navigation.
type UIHandler struct {
	feedback ports.FeedbackService
}

func NewUIHandler(feedback ports.FeedbackService) *UIHandler {
	return &UIHandler{feedback: feedback}
}

// State returns the feedback snapshot for the current session.
func (h *UIHandler) State(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.feedback.State(s.ID))
}

// DismissToast removes one toast. Dismissing an already-expired toast
// is fine; the shell may race the auto-removal timer.
func (h *UIHandler) DismissToast(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	h.feedback.Dismiss(s.ID, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ClearToasts empties the session's toast queue.
func (h *UIHandler) ClearToasts(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	h.feedback.Clear(s.ID)
	return c.NoContent(http.StatusNoContent)
}
