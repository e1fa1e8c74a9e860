package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightline/tutoring-platform/internal/api/middleware"
	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// currentUser extracts the principal injected by the Auth middleware and
// fast-fails before any service call. Role validity proves the middleware
// ran; a missing principal means the route was wired without Auth.
func currentUser(c echo.Context) (*domain.User, error) {
	u := middleware.Principal(c)
	if u == nil || !u.Role.IsValid() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return u, nil
}
