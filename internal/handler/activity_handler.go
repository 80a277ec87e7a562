package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

type activityService interface {
	List(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}

// ActivityHandler exposes the admin activity trail.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(svc activityService) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// List godoc
// @Summary Recent admin activity
// @Tags Activity
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 200)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be an integer"))
			return
		}
		limit = parsed
	}
	entries, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, entries, models.Notification{})
}
