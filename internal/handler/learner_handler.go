package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

type learnerService interface {
	List(ctx context.Context, query dto.LearnerListQuery) ([]dto.LearnerView, error)
	Get(ctx context.Context, id string) (*dto.LearnerView, error)
}

// LearnerHandler serves the learner roster.
type LearnerHandler struct {
	service learnerService
}

// NewLearnerHandler constructs the handler.
func NewLearnerHandler(svc learnerService) *LearnerHandler {
	return &LearnerHandler{service: svc}
}

// List godoc
// @Summary List learners
// @Tags Learners
// @Produce json
// @Param q query string false "Name or email contains"
// @Param status query string false "all, active or inactive"
// @Param band query string false "all, high, medium or low"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/users [get]
func (h *LearnerHandler) List(c *gin.Context) {
	var query dto.LearnerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}
	learners, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, learners, models.Notification{})
}

// Get godoc
// @Summary Learner details
// @Tags Learners
// @Produce json
// @Param id path string true "Learner ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/users/{id} [get]
func (h *LearnerHandler) Get(c *gin.Context) {
	learner, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, learner, models.Notification{})
}
