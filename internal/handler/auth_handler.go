package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/middleware"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

const dashboardPath = "/admin/dashboard"

type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, models.Notification, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) bool
}

// SessionCookie controls the cookie mirror of the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
	cookie  SessionCookie
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, cookie SessionCookie) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = middleware.DefaultSessionCookie
	}
	return &AuthHandler{service: svc, cookie: cookie}
}

// Login godoc
// @Summary Sign in as the administrator
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"), models.Notification{})
		return
	}

	res, note, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err, note)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token, 0, "/", "", h.cookie.Secure, true)
	middleware.SetMeta(c, "redirect", dashboardPath)
	respond(c, http.StatusOK, res, note)
}

// Logout godoc
// @Summary Sign out
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c, h.cookie.Name)
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		fail(c, err, models.Notification{})
		return
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	middleware.SetMeta(c, "redirect", middleware.LoginPath)
	respond(c, http.StatusOK, dto.SessionStatus{Authenticated: false}, models.Notification{})
}

// Session godoc
// @Summary Report whether the caller is signed in
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	token := middleware.SessionToken(c, h.cookie.Name)
	status := dto.SessionStatus{Authenticated: h.service.IsAuthenticated(c.Request.Context(), token)}
	respond(c, http.StatusOK, status, models.Notification{})
}
