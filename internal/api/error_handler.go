package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Code is
// a stable, machine-readable identifier; Error is for humans.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// domainErrorMap pins each sentinel to its HTTP status and machine code.
var domainErrorMap = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrAuthentication, http.StatusUnauthorized, "authentication_invalid"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{domain.ErrWrongPassword, http.StatusUnauthorized, "wrong_password"},
	{domain.ErrAdminOnly, http.StatusUnauthorized, "admin_only"},
	{domain.ErrTestUser, http.StatusForbidden, "test_user"},
	{domain.ErrSupplierLogin, http.StatusForbidden, "supplier_login"},
	{domain.ErrUserExists, http.StatusBadRequest, "already_registered"},
	{domain.ErrCustomerRegistered, http.StatusBadRequest, "already_registered"},
	{domain.ErrClientExists, http.StatusBadRequest, "client_exists"},
	{domain.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
	{domain.ErrUserNotFound, http.StatusBadRequest, "user_not_found"},
	{domain.ErrClientNotFound, http.StatusNotFound, "client_not_found"},
	{domain.ErrCustomerNotFound, http.StatusNotFound, "customer_not_found"},
	{domain.ErrInvalidOTP, http.StatusUnauthorized, "invalid_otp"},
	{domain.ErrOTPExpired, http.StatusUnauthorized, "otp_expired"},
	{domain.ErrOTPThrottled, http.StatusTooManyRequests, "otp_throttled"},
	{domain.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
	{domain.ErrContainerNotFound, http.StatusNotFound, "container_not_found"},
	{domain.ErrWarehouseNotFound, http.StatusNotFound, "warehouse_not_found"},
	{domain.ErrPaymentNotFound, http.StatusNotFound, "payment_not_found"},
	{domain.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known
// domain errors to deterministic status/code pairs, logs unexpected errors
// without leaking details to the client, and always renders the JSON
// envelope {"error": ..., "code": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Error: msg, Code: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401/403).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	for _, m := range domainErrorMap {
		if errors.Is(err, m.err) {
			return m.status, m.code, m.err.Error()
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal_error", "internal server error"
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "authentication_invalid"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}
