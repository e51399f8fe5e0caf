package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/metrics"
	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// BookingHandler handles booking creation and lookups.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type partyRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type createBookingRequest struct {
	Sender     partyRequest `json:"sender" validate:"required"`
	Receiver   partyRequest `json:"receiver" validate:"required"`
	Type       string       `json:"type" validate:"required,oneof=bundled single"`
	Location   string       `json:"location" validate:"required"`
	SupplierID string       `json:"supplier_id"`
}

// Create registers a new booking and mints its identifier.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		Sender:     domain.Party{Name: req.Sender.Name, Email: req.Sender.Email, Phone: req.Sender.Phone},
		Receiver:   domain.Party{Name: req.Receiver.Name, Email: req.Receiver.Email, Phone: req.Receiver.Phone},
		Type:       domain.BookingType(req.Type),
		Location:   req.Location,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		return err
	}

	metrics.IdentifiersMintedTotal.WithLabelValues("booking").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"data":    booking,
		"message": "Booking created successfully",
	})
}

// List returns a page of bookings, optionally filtered by status.
func (h *BookingHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bookings, total, err := h.bookings.List(c.Request().Context(), ports.ListBookingsFilter{
		Status: domain.BookingStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":           bookings,
		"total_bookings": total,
	})
}

// GetByID returns a single booking by its minted identifier.
func (h *BookingHandler) GetByID(c echo.Context) error {
	booking, err := h.bookings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": booking})
}

type updateBookingStatusRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// UpdateStatus moves a booking to a new lifecycle state.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), req.BookingID, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":    booking,
		"message": "Booking status updated",
	})
}
