package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// resolve reads the session cookie and exchanges the ticket for the
// live session. A missing cookie, a bad ticket, and an expired or
// deleted session all come back as nil.
func resolve(c echo.Context, sessions ports.SessionService, cookieName string) *domain.Session {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	s, err := sessions.Current(c.Request().Context(), cookie.Value)
	if err != nil || !s.Authenticated() {
		return nil
	}
	return s
}

func inject(c echo.Context, s *domain.Session) {
	req := c.Request()
	c.SetRequest(req.WithContext(domain.WithSession(req.Context(), s)))
}

// RequireSession guards page routes. An unauthenticated caller is sent
// to the login page with a 303, replacing the page it tried to reach.
func RequireSession(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := resolve(c, sessions, cookieName)
			if s == nil {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			inject(c, s)
			return next(c)
		}
	}
}

// RequireAPISession guards API routes. Same check as RequireSession
// but a JSON 401 instead of a redirect: API callers handle status
// codes, not Location headers.
func RequireAPISession(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := resolve(c, sessions, cookieName)
			if s == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			inject(c, s)
			return next(c)
		}
	}
}

// PublicOnly inverts the session guard: a caller who is already logged
// in has no business on the login page and lands on the dashboard.
func PublicOnly(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s := resolve(c, sessions, cookieName); s != nil {
				return c.Redirect(http.StatusSeeOther, dashboardPath)
			}
			return next(c)
		}
	}
}
