package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/model"
	"bizdesk/internal/repository"
	"bizdesk/internal/service"
)

// ActivityHandler handles activity log endpoints.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ActivityListResponse is a page of activity entries.
type ActivityListResponse struct {
	Entries []model.ActivityLog `json:"entries"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
}

// List godoc
// @Summary List activity log entries
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param module query string false "Filter by module"
// @Param user_id query int false "Filter by actor"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} ActivityListResponse
// @Router /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	filter := repository.ActivityFilter{
		Module: c.QueryParam("module"),
	}
	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil || userID < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		filter.UserID = uint(userID)
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	entries, total, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, ActivityListResponse{
		Entries: entries,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	})
}
