package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/brightline/tutoring-platform/internal/api/metrics"
	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// Guard gates a role-owned dashboard route. Unauthenticated requests are
// redirected to sign-in; authenticated requests with the wrong role are
// redirected to the landing page with a denial notice. The route is never
// served in either case. The decision itself lives in
// domain.CanAccessDashboard, not here.
func Guard(owner domain.Role, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFromRequest(c, jwtSecret)
			if err != nil {
				metrics.DashboardDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusSeeOther, domain.SignInPath)
			}

			if !domain.CanAccessDashboard(principal, owner) {
				metrics.DashboardDenialsTotal.WithLabelValues("role_mismatch").Inc()
				notice := url.QueryEscape("You are not authorized to perform this action.")
				return c.Redirect(http.StatusSeeOther, domain.DefaultLandingPath+"?notice="+notice)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}
