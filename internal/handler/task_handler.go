package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/middleware"
	"bizdesk/internal/model"
	"bizdesk/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	svc service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// TaskRequest represents a task create/update payload.
type TaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssigneeID  *uint      `json:"assignee_id"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

func (r *TaskRequest) toModel() *model.Task {
	return &model.Task{
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TaskRequest true "Task payload"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req TaskRequest
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
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Task payload"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TaskRequest
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
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
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
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	task, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// List godoc
// @Summary List tasks, optionally by assignee
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param assignee_id query int false "Filter by assignee"
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	if raw := c.QueryParam("assignee_id"); raw != "" {
		assigneeID, err := strconv.Atoi(raw)
		if err != nil || assigneeID < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid assignee_id")
		}
		tasks, err := h.svc.ListByAssignee(c.Request().Context(), uint(assigneeID))
		if err != nil {
			return mapDomainError(err)
		}
		return c.JSON(http.StatusOK, tasks)
	}

	tasks, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}
