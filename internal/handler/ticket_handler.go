package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// TicketHandler handles support ticket endpoints.
type TicketHandler struct {
	svc service.TicketService
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// TicketRequest represents a ticket create/update payload.
type TicketRequest struct {
	CustomerID *uint  `json:"customer_id"`
	Subject    string `json:"subject" validate:"required"`
	Body       string `json:"body"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	AssigneeID *uint  `json:"assignee_id"`
}

func (r *TicketRequest) toModel() *model.Ticket {
	return &model.Ticket{
		CustomerID: r.CustomerID,
		Subject:    r.Subject,
		Body:       r.Body,
		Status:     r.Status,
		Priority:   r.Priority,
		AssigneeID: r.AssigneeID,
	}
}

// Create godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TicketRequest true "Ticket payload"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} errors.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	var req TicketRequest
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
// @Summary Update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body TicketRequest true "Ticket payload"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TicketRequest
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
// @Summary Delete a ticket
// @Tags tickets
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
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
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ticket, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// List godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ticket
// @Router /tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, tickets)
}
