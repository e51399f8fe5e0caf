package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/core/ports"
)

// RequireAdmin re-loads the full staff record for the bound principal and
// refuses anyone below admin privilege. The record is loaded fresh on every
// request: a demoted admin loses access as soon as the role change lands,
// even while their token is still valid.
func RequireAdmin(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(CtxUserID).(string)
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
			}
			if !user.Role.IsAdmin() {
				return echo.NewHTTPError(http.StatusUnauthorized, "Admin resource. Access denied")
			}

			return next(c)
		}
	}
}

// RejectTestUser blocks the designated demo account from mutation routes
// while leaving its read access intact.
func RejectTestUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isTest, _ := c.Get(CtxIsTestUser).(bool); isTest {
				return echo.NewHTTPError(http.StatusForbidden, "test user cannot perform this action")
			}
			return next(c)
		}
	}
}
