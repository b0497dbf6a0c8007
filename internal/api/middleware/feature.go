package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/permissions"
)

// RequireFeature gates a route on a feature. It assumes a session
// guard already ran; a request that somehow reaches it without a
// session is rejected like a missing permission.
//
// Two checks stack: the role table, then the subscription feature map
// cached on the session at login. When the map carries an explicit
// entry for the feature, that entry decides whether the tenant's plan
// includes it; an owner on a plan without reports still gets 403.
// Always a 403 body, never a redirect: the caller keeps its page and
// renders the not-authorized state in place.
func RequireFeature(feature string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := domain.SessionFrom(c.Request().Context())
			if s == nil || !s.Authenticated() {
				return notAuthorized(c, feature)
			}
			if !permissions.HasFeaturePermission(permissions.Role(s.Role()), feature) {
				return notAuthorized(c, feature)
			}
			if enabled, ok := s.Features[feature]; ok && !enabled {
				return notAuthorized(c, feature)
			}
			return next(c)
		}
	}
}

func notAuthorized(c echo.Context, feature string) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"error":   "not authorized",
		"feature": feature,
	})
}
