package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/rbac"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, sess *auth.Session, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, sess, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Restore(ctx context.Context, sessionID string) (*auth.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected *echo.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Code)
}

func TestSessionGuardMissingToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	store := new(MockSessionStore)
	c, _ := newContext("")

	err := SessionGuard(jwtService, store)(okHandler)(c)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
	store.AssertNotCalled(t, "Restore")
}

func TestSessionGuardInvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	store := new(MockSessionStore)
	c, _ := newContext("Bearer not-a-token")

	err := SessionGuard(jwtService, store)(okHandler)(c)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
	store.AssertNotCalled(t, "Restore")
}

func TestSessionGuardWrongSigningKey(t *testing.T) {
	_, token, err := auth.NewJWTService("other-secret").GenerateSessionToken(1, "Ana", "admin", time.Hour)
	assert.NoError(t, err)

	store := new(MockSessionStore)
	c, _ := newContext("Bearer " + token)

	err = SessionGuard(auth.NewJWTService("test-secret"), store)(okHandler)(c)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
	store.AssertNotCalled(t, "Restore")
}

func TestSessionGuardSessionGone(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	sessionID, token, err := jwtService.GenerateSessionToken(1, "Ana", "admin", time.Hour)
	assert.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Restore", mock.Anything, sessionID).Return(nil, auth.ErrSessionNotFound)
	c, _ := newContext("Bearer " + token)

	err = SessionGuard(jwtService, store)(okHandler)(c)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
	store.AssertExpectations(t)
}

func TestSessionGuardAttachesSession(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	sessionID, token, err := jwtService.GenerateSessionToken(7, "Ana", "admin", time.Hour)
	assert.NoError(t, err)

	sess := &auth.Session{UserID: 7, Role: "admin", Name: "Ana"}
	store := new(MockSessionStore)
	store.On("Restore", mock.Anything, sessionID).Return(sess, nil)
	c, rec := newContext("Bearer " + token)

	var seen *auth.Session
	err = SessionGuard(jwtService, store)(func(c echo.Context) error {
		seen = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess, seen)
	store.AssertExpectations(t)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		sess       *auth.Session
		required   rbac.Role
		wantStatus int
	}{
		{"no session", nil, rbac.RoleAdministrator, http.StatusUnauthorized},
		{"matching raw role", &auth.Session{Role: "admin"}, rbac.RoleAdministrator, http.StatusOK},
		{"matching canonical role", &auth.Session{Role: "Administrator"}, rbac.RoleAdministrator, http.StatusOK},
		{"wrong role", &auth.Session{Role: "technician"}, rbac.RoleAdministrator, http.StatusForbidden},
		{"unknown role", &auth.Session{Role: "superuser"}, rbac.RoleAdministrator, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			if tt.sess != nil {
				c.Set(sessionContextKey, tt.sess)
			}

			err := RequireRole(tt.required)(okHandler)(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assertHTTPStatus(t, err, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleNamesRequiredRole(t *testing.T) {
	c, _ := newContext("")
	c.Set(sessionContextKey, &auth.Session{Role: "technician"})

	err := RequireRole(rbac.RoleAdministrator)(okHandler)(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Contains(t, resp.Error, string(rbac.RoleAdministrator))
	assert.Equal(t, "FORBIDDEN", resp.Code)
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		sess       *auth.Session
		module     string
		action     rbac.Action
		wantStatus int
	}{
		{"granted", &auth.Session{Role: "technician"}, rbac.ModuleServices, rbac.ActionView, http.StatusOK},
		{"denied action", &auth.Session{Role: "technician"}, rbac.ModuleServices, rbac.ActionDelete, http.StatusForbidden},
		{"denied module", &auth.Session{Role: "technician"}, rbac.ModuleUsers, rbac.ActionView, http.StatusForbidden},
		{"no session", nil, rbac.ModuleServices, rbac.ActionView, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			if tt.sess != nil {
				c.Set(sessionContextKey, tt.sess)
			}

			err := RequirePermission(tt.module, tt.action)(okHandler)(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assertHTTPStatus(t, err, tt.wantStatus)
			}
		})
	}
}
