package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/middleware"
)

// ctxUserID extracts the principal identifier injected by the Auth
// middleware. An empty value means the middleware never ran for this route;
// fail closed with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication invalid")
	}
	return id, nil
}
