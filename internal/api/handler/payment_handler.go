package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// PaymentHandler handles payment creation and settlement.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createPaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"payment_method" validate:"omitempty,oneof=cash cod online"`
}

// Create registers a new payment for a booking.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.payments.Create(c.Request().Context(), ports.CreatePaymentInput{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    domain.PaymentMethod(req.Method),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"data":    payment,
		"message": "Payment created successfully",
	})
}

// GetByID returns a single payment.
func (h *PaymentHandler) GetByID(c echo.Context) error {
	payment, err := h.payments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": payment})
}

type updatePaymentStatusRequest struct {
	PaymentID     string `json:"payment_id" validate:"required"`
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transaction_id"`
}

// UpdateStatus moves a payment to a new settlement state. Marking a payment
// paid stamps its payment date.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	var req updatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.payments.UpdateStatus(c.Request().Context(), req.PaymentID, domain.PaymentStatus(req.Status), req.TransactionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":    payment,
		"message": "Payment status updated",
	})
}
