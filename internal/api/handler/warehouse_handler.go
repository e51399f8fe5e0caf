package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/metrics"
	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// WarehouseHandler handles warehouse creation and lookups.
type WarehouseHandler struct {
	warehouses ports.WarehouseService
}

func NewWarehouseHandler(warehouses ports.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses}
}

type createWarehouseRequest struct {
	Name     string `json:"name" validate:"required,oneof=CWA BWA"`
	Location string `json:"location" validate:"required"`
}

// Create registers a new warehouse and mints its identifier.
func (h *WarehouseHandler) Create(c echo.Context) error {
	var req createWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	warehouse, err := h.warehouses.Create(c.Request().Context(), domain.WarehouseName(req.Name), req.Location)
	if err != nil {
		return err
	}

	metrics.IdentifiersMintedTotal.WithLabelValues("warehouse").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"data":    warehouse,
		"message": "Warehouse created successfully",
	})
}

// List returns all warehouses.
func (h *WarehouseHandler) List(c echo.Context) error {
	warehouses, err := h.warehouses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": warehouses})
}
