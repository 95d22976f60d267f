package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// OrderRequest represents an order create/update payload.
type OrderRequest struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	ServiceID  *uint  `json:"service_id"`
	Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
	Total      string `json:"total"`
	Notes      string `json:"notes"`
}

// OrderStatusRequest represents a status transition payload.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r *OrderRequest) toModel() (*model.Order, error) {
	order := &model.Order{
		CustomerID: r.CustomerID,
		ServiceID:  r.ServiceID,
		Quantity:   r.Quantity,
		Notes:      r.Notes,
	}
	if r.Total != "" {
		total, err := decimal.NewFromString(r.Total)
		if err != nil {
			return nil, err
		}
		order.Total = total
	}
	return order, nil
}

// Create godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderRequest true "Order payload"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid total")
	}

	created, err := h.svc.Create(c.Request().Context(), middleware.CurrentSession(c), order)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body OrderRequest true "Order payload"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid total")
	}

	updated, err := h.svc.Update(c.Request().Context(), middleware.CurrentSession(c), id, order)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateStatus godoc
// @Summary Transition an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body OrderStatusRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateStatus(c.Request().Context(), middleware.CurrentSession(c), id, req.Status)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
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
// @Summary Get an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	order, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// List godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Export godoc
// @Summary Export orders as CSV
// @Tags orders
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /orders/export [get]
func (h *OrderHandler) Export(c echo.Context) error {
	data, err := h.svc.ExportCSV(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
