// Package middleware holds the route guards that gate protected handlers.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/auth"
	"bizdesk/internal/errors"
	"bizdesk/internal/rbac"
)

// sessionContextKey is the echo context key the restored session lives under.
const sessionContextKey = "current_session"

// SessionGuard authenticates a request: it validates the bearer token and
// restores the stored session record, rejecting with 401 when either step
// fails. The session is attached to the context for downstream handlers, so
// a request is never half-authenticated: either both token and stored record
// check out, or nothing runs.
func SessionGuard(jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.BearerFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return unauthenticated("missing credentials")
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return unauthenticated("invalid token")
			}

			sess, err := sessionStore.Restore(c.Request().Context(), claims.ID)
			if err != nil {
				// Logged out or expired server-side; the token alone is not
				// enough.
				return unauthenticated("session expired")
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireRole rejects with 403 unless the session's role normalizes to the
// required canonical role. Normalization here matches the permission
// evaluator's, so the two authorization paths can never disagree about what
// a raw role means.
func RequireRole(required rbac.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return unauthenticated("missing credentials")
			}
			role, err := rbac.Normalize(sess.Role)
			if err != nil || role != required {
				return forbidden(fmt.Sprintf("access restricted: requires role %s", required))
			}
			return next(c)
		}
	}
}

// RequirePermission rejects with 403 unless the session may perform action
// on module.
func RequirePermission(module string, action rbac.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if !rbac.HasPermission(sess, module, action) {
				return forbidden(fmt.Sprintf("access restricted: %s on %s", action, module))
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session attached by SessionGuard, or nil.
func CurrentSession(c echo.Context) *auth.Session {
	sess, _ := c.Get(sessionContextKey).(*auth.Session)
	return sess
}

func unauthenticated(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: message,
		Code:  "UNAUTHENTICATED",
	})
}

func forbidden(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
		Error: message,
		Code:  "FORBIDDEN",
	})
}
