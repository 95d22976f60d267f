package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/middleware"
	"bizdesk/internal/nav"
)

// NavHandler serves the permission-filtered navigation tree.
type NavHandler struct{}

// NewNavHandler creates a new nav handler.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Entries godoc
// @Summary Navigation entries visible to the current user
// @Tags nav
// @Produce json
// @Security BearerAuth
// @Success 200 {array} nav.Entry
// @Router /nav [get]
func (h *NavHandler) Entries(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, nav.VisibleFor(sess))
}
