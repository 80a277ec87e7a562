package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/middleware"
	"github.com/Wekraft-001/admin-hub/internal/models"
)

type resetService interface {
	Reset(ctx context.Context, sessionID string) models.Notification
}

// SystemHandler serves the landing page and the data reset.
type SystemHandler struct {
	reset resetService
}

// NewSystemHandler constructs the handler.
func NewSystemHandler(reset resetService) *SystemHandler {
	return &SystemHandler{reset: reset}
}

// Index godoc
// @Summary Landing page
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *SystemHandler) Index(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"name":  "Admin Hub",
		"links": gin.H{"login": middleware.LoginPath},
	}, models.Notification{})
}

// Reset godoc
// @Summary Restore every collection to its initial data
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/reset [post]
func (h *SystemHandler) Reset(c *gin.Context) {
	note := h.reset.Reset(c.Request.Context(), sessionID(c))
	respond(c, http.StatusOK, gin.H{"reset": true}, note)
}
