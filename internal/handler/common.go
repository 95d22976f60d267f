package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "bizdesk/internal/errors"
)

// mapDomainError converts a service error into an echo HTTP error using the
// shared domain error mapping.
func mapDomainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
