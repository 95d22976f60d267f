package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	svc      service.CustomerService
	orderSvc service.OrderService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(svc service.CustomerService, orderSvc service.OrderService) *CustomerHandler {
	return &CustomerHandler{svc: svc, orderSvc: orderSvc}
}

// CustomerRequest represents a customer create/update payload.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
	Active  bool   `json:"active"`
}

func (r *CustomerRequest) toModel() *model.Customer {
	return &model.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Address: r.Address,
		City:    r.City,
		Notes:   r.Notes,
		Active:  r.Active,
	}
}

// Create godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CustomerRequest true "Customer payload"
// @Success 201 {object} model.Customer
// @Failure 400 {object} errors.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.svc.Create(c.Request().Context(), middleware.CurrentSession(c), req.toModel())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body CustomerRequest true "Customer payload"
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.Update(c.Request().Context(), middleware.CurrentSession(c), id, req.toModel())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a customer
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
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
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	customer, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// List godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Customer
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Orders godoc
// @Summary List a customer's orders
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {array} model.Order
// @Router /customers/{id}/orders [get]
func (h *CustomerHandler) Orders(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	orders, err := h.orderSvc.ListByCustomer(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Export godoc
// @Summary Export customers as CSV
// @Tags customers
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /customers/export [get]
func (h *CustomerHandler) Export(c echo.Context) error {
	data, err := h.svc.ExportCSV(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="customers.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
