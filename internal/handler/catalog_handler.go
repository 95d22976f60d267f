package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// CatalogHandler handles service catalog endpoints.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ServiceRequest represents a catalog service create/update payload.
type ServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	DurationMin int    `json:"duration_min" validate:"omitempty,min=1"`
	Active      bool   `json:"active"`
}

func (r *ServiceRequest) toModel() (*model.Service, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, err
	}
	return &model.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		DurationMin: r.DurationMin,
		Active:      r.Active,
	}, nil
}

// Create godoc
// @Summary Create a catalog service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "Service payload"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	created, err := h.svc.Create(c.Request().Context(), middleware.CurrentSession(c), svc)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a catalog service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body ServiceRequest true "Service payload"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	updated, err := h.svc.Update(c.Request().Context(), middleware.CurrentSession(c), id, svc)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a catalog service
// @Tags services
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentSession(c), id); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get godoc
// @Summary Get a catalog service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	svc, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, svc)
}

// List godoc
// @Summary List catalog services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, services)
}
