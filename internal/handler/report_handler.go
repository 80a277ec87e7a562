package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

type reportService interface {
	Overview(ctx context.Context, timeRange string) (*models.ReportOverview, error)
}

// ReportHandler exposes the analytics overview.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Overview godoc
// @Summary Analytics overview
// @Tags Reports
// @Produce json
// @Param range query string false "7days, 30days, 3months, 6months or 1year"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/reports [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), c.Query("range"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, overview, models.Notification{})
}
