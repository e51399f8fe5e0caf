package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/metrics"
	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// ClientHandler handles client registration, CRUD and the OTP login flow.
type ClientHandler struct {
	clients ports.ClientService
	otp     ports.OTPService
	// echoOTP enables returning the generated code in the response body.
	// Only ever true outside production; real deployments deliver the code
	// through the notifier.
	echoOTP bool
}

func NewClientHandler(clients ports.ClientService, otp ports.OTPService, echoOTP bool) *ClientHandler {
	return &ClientHandler{clients: clients, otp: otp, echoOTP: echoOTP}
}

// --- Request / Response types ---

type createClientRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=customer supplier"`
	Address string `json:"address"`
}

type clientResponse struct {
	Data    *domain.Client `json:"data"`
	Message string         `json:"message"`
	Token   string         `json:"token,omitempty"`
}

// Create registers a new client (customer or supplier).
//
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Router       /client/create [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    domain.ClientRole(req.Role),
	})
	if err != nil {
		return err
	}

	if result.AlreadyExists {
		return c.JSON(http.StatusOK, clientResponse{
			Data:    result.Client,
			Message: "Supplier already exists",
		})
	}

	metrics.RegistrationsTotal.WithLabelValues("client", req.Role).Inc()
	metrics.IdentifiersMintedTotal.WithLabelValues("client").Inc()
	return c.JSON(http.StatusCreated, clientResponse{
		Data:    result.Client,
		Message: "Client created successfully",
		Token:   result.Token,
	})
}

// List returns a page of clients, optionally filtered by role.
func (h *ClientHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	clients, total, err := h.clients.List(c.Request().Context(), ports.ListClientsFilter{
		Role:  domain.ClientRole(c.QueryParam("role")),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":          clients,
		"total_clients": total,
		"message":       "Clients fetched successfully",
	})
}

// GetByID returns a single client.
func (h *ClientHandler) GetByID(c echo.Context) error {
	client, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientResponse{Data: client, Message: "Client found successfully"})
}

type updateClientRequest struct {
	Name    string `json:"name" validate:"omitempty,min=3,max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Update applies a partial update to the caller's own client record.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.Update(c.Request().Context(), id, ports.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientResponse{Data: client, Message: "Client updated successfully"})
}

// Delete removes a client.
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}

type addFormRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	FormLink  string `json:"form_link" validate:"required"`
}

// AddForm appends a booking form link to the caller's own client record.
func (h *ClientHandler) AddForm(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.AddForm(c.Request().Context(), id, req.BookingID, req.FormLink)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, clientResponse{Data: client, Message: "Form added successfully"})
}

// --- OTP login flow ---

type generateOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type generateOTPResponse struct {
	// Data carries the code in non-production environments only.
	Data       string `json:"data,omitempty"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
	ExpiresAt  string `json:"expires_at"`
}

// GenerateOTP creates a login code for the customer bound to a phone number.
//
// @Summary      Generate a login OTP
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      generateOTPRequest  true  "Customer phone"
// @Success      200   {object}  generateOTPResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /client/generate-otp [post]
func (h *ClientHandler) GenerateOTP(c echo.Context) error {
	var req generateOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	challenge, err := h.otp.Generate(c.Request().Context(), req.Phone)
	if err != nil {
		return err
	}

	metrics.OTPGeneratedTotal.Inc()

	resp := generateOTPResponse{
		Message:    "OTP sent successfully",
		RedirectTo: fmt.Sprintf("/otp?phone=%s", req.Phone),
		ExpiresAt:  challenge.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if h.echoOTP {
		resp.Data = challenge.Code
	}
	return c.JSON(http.StatusOK, resp)
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	OTPCode     string `json:"otp_code" validate:"required"`
}

// VerifyOTP consumes a login code and returns a session token.
//
// @Summary      Verify a login OTP
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Phone and code"
// @Success      200   {object}  clientResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /client/verify-otp [post]
func (h *ClientHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.otp.Verify(c.Request().Context(), req.PhoneNumber, req.OTPCode)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("otp", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("otp", "success").Inc()
	return c.JSON(http.StatusOK, clientResponse{
		Data:    result.Client,
		Token:   result.Token,
		Message: "OTP verified successfully",
	})
}
