package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

// DashboardHandler serves the per-role dashboards. Access control lives in
// the Guard middleware; by the time a request lands here the principal is
// authenticated and owns the dashboard.
type DashboardHandler struct {
	userRepo ports.UserRepository
}

func NewDashboardHandler(userRepo ports.UserRepository) *DashboardHandler {
	return &DashboardHandler{userRepo: userRepo}
}

// Show returns the dashboard payload for the owning role, with the
// principal's own full record.
//
// @Summary      Role dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /dashboards/{role} [get]
func (h *DashboardHandler) Show(owner domain.Role, name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := currentUser(c)
		if err != nil {
			return err
		}

		user, err := h.userRepo.FindByID(c.Request().Context(), principal.ID)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, dashboardResponse{
			Dashboard: name,
			Role:      owner,
			User:      user,
			LoadedAt:  time.Now().UTC(),
		})
	}
}
