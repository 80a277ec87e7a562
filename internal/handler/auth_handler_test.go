package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type fakeAuthService struct {
	loggedOut []string
	valid     map[string]bool
}

func (f *fakeAuthService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, models.Notification, error) {
	if req.Email != "admin@example.com" || req.Password != "admin123" {
		return nil, models.Warn("Authentication failed", "Invalid email or password."), appErrors.ErrInvalidCredentials
	}
	return &dto.LoginResponse{Token: "tok", SessionID: "sid", Authenticated: true}, models.Notify("Welcome back, Admin", "Let's make learning impactful."), nil
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) IsAuthenticated(_ context.Context, token string) bool {
	return f.valid[token]
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, SessionCookie{})
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "admin123"})

	c, w := newGinContext(http.MethodPost, "/admin/login", body)
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Welcome back, Admin", notificationTitle(env))
	assert.Equal(t, "/admin/dashboard", env.Meta["redirect"])
	assert.True(t, strings.HasPrefix(w.Header().Get("Set-Cookie"), "admin_session=tok"))
}

func TestAuthHandlerLoginFailureCarriesNotification(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, SessionCookie{})
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})

	c, w := newGinContext(http.MethodPost, "/admin/login", body)
	handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, env.Error.Code)
	assert.Equal(t, "Authentication failed", notificationTitle(env))
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, SessionCookie{})

	c, w := newGinContext(http.MethodPost, "/admin/login", []byte("{"))
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	svc := &fakeAuthService{}
	handler := NewAuthHandler(svc, SessionCookie{Name: "admin_session"})

	c, w := newGinContext(http.MethodPost, "/admin/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer tok")
	handler.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tok"}, svc.loggedOut)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	assert.Equal(t, "/admin/login", decodeEnvelope(t, w).Meta["redirect"])
}

func TestAuthHandlerSession(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{valid: map[string]bool{"tok": true}}, SessionCookie{})

	c, w := newGinContext(http.MethodGet, "/admin/session", nil)
	c.Request.Header.Set("Authorization", "Bearer tok")
	handler.Session(c)
	assert.JSONEq(t, `{"authenticated":true}`, string(decodeEnvelope(t, w).Data))

	c, w = newGinContext(http.MethodGet, "/admin/session", nil)
	handler.Session(c)
	assert.JSONEq(t, `{"authenticated":false}`, string(decodeEnvelope(t, w).Data))
}
