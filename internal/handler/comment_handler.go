package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// CommentHandler handles ticket comment endpoints.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CommentRequest represents a comment or reply payload.
type CommentRequest struct {
	Body     string `json:"body" validate:"required"`
	ParentID *uint  `json:"parent_id"`
}

// VoteRequest represents a comment vote payload.
type VoteRequest struct {
	Up bool `json:"up"`
}

// Create godoc
// @Summary Comment on a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	ticketID, err := parseID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment := &model.Comment{
		TicketID: ticketID,
		ParentID: req.ParentID,
		Body:     req.Body,
	}

	created, err := h.svc.Create(c.Request().Context(), middleware.CurrentSession(c), comment)
	if err != nil {
		if err == service.ErrReplyMismatch {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "REPLY_MISMATCH",
			})
		}
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListByTicket godoc
// @Summary List a ticket's comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {array} model.Comment
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) ListByTicket(c echo.Context) error {
	ticketID, err := parseID(c)
	if err != nil {
		return err
	}
	comments, err := h.svc.ListByTicket(c.Request().Context(), ticketID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Vote godoc
// @Summary Vote on a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body VoteRequest true "Vote direction"
// @Success 200 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id}/vote [post]
func (h *CommentHandler) Vote(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Vote(c.Request().Context(), middleware.CurrentSession(c), id, req.Up)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentSession(c), id); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
