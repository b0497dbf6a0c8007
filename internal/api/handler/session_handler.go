package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

// SessionHandler owns the login/logout surface and the session cookie.
type SessionHandler struct {
	sessions   ports.SessionService
	feedback   ports.FeedbackService
	cookieName string
	cookieTTL  time.Duration
}

func NewSessionHandler(sessions ports.SessionService, feedback ports.FeedbackService, cookieName string, cookieTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		feedback:   feedback,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

type sessionResponse struct {
	User     *domain.User    `json:"user"`
	Features map[string]bool `json:"features,omitempty"`
}

// Login authenticates against the upstream ERP and opens a session.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LoginCredentials  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var creds domain.LoginCredentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&creds); err != nil {
		return err
	}

	sess, ticket, err := h.sessions.Login(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(ticket, h.cookieTTL))
	return c.JSON(http.StatusOK, sessionResponse{User: sess.User, Features: sess.Features})
}

// Logout closes the session. Upstream revocation is best-effort; the
// local session and its feedback state always go.
func (h *SessionHandler) Logout(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), s); err != nil {
		return err
	}
	h.feedback.Drop(s.ID)

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the profile and feature map of the current session.
func (h *SessionHandler) Me(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: s.User, Features: s.Features})
}

// Refresh re-resolves the ticket, which rotates the access token when
// it is close to expiry, and reports the resulting session.
func (h *SessionHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	sess, err := h.sessions.Current(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: sess.User, Features: sess.Features})
}

func (h *SessionHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
