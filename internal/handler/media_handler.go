package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/middleware"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

const defaultMediaView = "grid"

type mediaService interface {
	List(ctx context.Context, query dto.MediaListQuery) ([]dto.MediaView, error)
	Stats(ctx context.Context) (*models.MediaStats, error)
	Delete(ctx context.Context, sessionID, id string) (models.Notification, error)
	Upload(ctx context.Context, sessionID string, req dto.UploadRequest) (*dto.UploadResponse, models.Notification, error)
	CopyURL(ctx context.Context, sessionID, id string) (*dto.CopyURLResponse, models.Notification, error)
}

// MediaHandler serves the media library.
type MediaHandler struct {
	service mediaService
}

// NewMediaHandler constructs the handler.
func NewMediaHandler(svc mediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// List godoc
// @Summary List media files
// @Tags Media
// @Produce json
// @Param tab query string false "all, image, video or document"
// @Param q query string false "Name or tag contains"
// @Param view query string false "grid or list, echoed in meta"
// @Success 200 {object} response.Envelope
// @Router /admin/media [get]
func (h *MediaHandler) List(c *gin.Context) {
	var query dto.MediaListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}
	files, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	view := query.View
	if view == "" {
		view = defaultMediaView
	}
	middleware.SetMeta(c, "view", view)
	respond(c, http.StatusOK, files, models.Notification{})
}

// Stats godoc
// @Summary Media library totals
// @Tags Media
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/media/stats [get]
func (h *MediaHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, stats, models.Notification{})
}

// Delete godoc
// @Summary Delete a media file
// @Tags Media
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	note, err := h.service.Delete(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")}, note)
}

// Upload godoc
// @Summary Upload media files
// @Description Files are validated against the allowed types and size; nothing is stored.
// @Tags Media
// @Accept json
// @Produce json
// @Param payload body dto.UploadRequest true "Files to upload"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /admin/media/uploads [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid upload payload"))
		return
	}
	res, note, err := h.service.Upload(c.Request.Context(), sessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusAccepted, res, note)
}

// CopyURL godoc
// @Summary Copy a media file URL
// @Tags Media
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/media/{id}/copy-url [post]
func (h *MediaHandler) CopyURL(c *gin.Context) {
	res, note, err := h.service.CopyURL(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, res, note)
}
