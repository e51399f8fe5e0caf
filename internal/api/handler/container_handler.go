package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/logistics-api/internal/api/metrics"
	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// ContainerHandler handles container creation and lookups.
type ContainerHandler struct {
	containers ports.ContainerService
}

func NewContainerHandler(containers ports.ContainerService) *ContainerHandler {
	return &ContainerHandler{containers: containers}
}

type createContainerRequest struct {
	Model       string   `json:"model" validate:"required"`
	Medium      string   `json:"medium_of_transport" validate:"required,oneof=Sea Air Land"`
	Location    string   `json:"location"`
	Ports       []string `json:"ports" validate:"required,min=1"`
	Description string   `json:"description"`
}

// Create registers a new container and mints its identifier.
func (h *ContainerHandler) Create(c echo.Context) error {
	var req createContainerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	container, err := h.containers.Create(c.Request().Context(), ports.CreateContainerInput{
		Model:       req.Model,
		Medium:      domain.TransportMedium(req.Medium),
		Location:    req.Location,
		Ports:       req.Ports,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.IdentifiersMintedTotal.WithLabelValues("container").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"data":    container,
		"message": "Container created successfully",
	})
}

// List returns all containers.
func (h *ContainerHandler) List(c echo.Context) error {
	containers, err := h.containers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": containers})
}

// GetByID returns a single container by its minted identifier.
func (h *ContainerHandler) GetByID(c echo.Context) error {
	container, err := h.containers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": container})
}
