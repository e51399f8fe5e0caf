package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/core/ports"
)

// Context keys bound by Auth for downstream middleware and handlers.
const (
	CtxUserID     = "user_id"
	CtxIsTestUser = "is_test_user"
)

// Auth requires a valid bearer token and injects the resolved principal into
// context. Every failure maps to the same generic 401 so callers cannot
// probe why a token was rejected.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
			}

			principalID, isTestUser, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
			}

			c.Set(CtxUserID, principalID)
			c.Set(CtxIsTestUser, isTestUser)

			return next(c)
		}
	}
}
