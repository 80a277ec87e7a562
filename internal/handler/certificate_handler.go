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

type certificateService interface {
	ListTemplates(ctx context.Context) ([]models.CertificateTemplate, error)
	CreateTemplate(ctx context.Context, sessionID string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error)
	UpdateTemplate(ctx context.Context, sessionID, id string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error)
	DeleteTemplate(ctx context.Context, sessionID, id string) (models.Notification, error)
	ListCertificates(ctx context.Context, query string) ([]models.Certificate, error)
	Download(ctx context.Context, sessionID, id string) (*models.Certificate, models.Notification, error)
}

// CertificateHandler serves certificate templates and issued certificates.
type CertificateHandler struct {
	service certificateService
}

// NewCertificateHandler constructs the handler.
func NewCertificateHandler(svc certificateService) *CertificateHandler {
	return &CertificateHandler{service: svc}
}

// ListTemplates godoc
// @Summary List certificate templates
// @Tags Certificates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/certificates/templates [get]
func (h *CertificateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, templates, models.Notification{})
}

// CreateTemplate godoc
// @Summary Create a certificate template
// @Tags Certificates
// @Accept json
// @Produce json
// @Param payload body dto.TemplateRequest true "Template form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/certificates/templates [post]
func (h *CertificateHandler) CreateTemplate(c *gin.Context) {
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid template payload"))
		return
	}
	tpl, note, err := h.service.CreateTemplate(c.Request.Context(), sessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, tpl, note)
}

// UpdateTemplate godoc
// @Summary Edit a certificate template
// @Tags Certificates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param payload body dto.TemplateRequest true "Template form"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/certificates/templates/{id} [put]
func (h *CertificateHandler) UpdateTemplate(c *gin.Context) {
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid template payload"))
		return
	}
	tpl, note, err := h.service.UpdateTemplate(c.Request.Context(), sessionID(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, tpl, note)
}

// DeleteTemplate godoc
// @Summary Delete a certificate template
// @Tags Certificates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/certificates/templates/{id} [delete]
func (h *CertificateHandler) DeleteTemplate(c *gin.Context) {
	note, err := h.service.DeleteTemplate(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")}, note)
}

// ListCertificates godoc
// @Summary List issued certificates
// @Tags Certificates
// @Produce json
// @Param q query string false "Learner name or certificate number contains"
// @Success 200 {object} response.Envelope
// @Router /admin/certificates [get]
func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	certificates, err := h.service.ListCertificates(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, certificates, models.Notification{})
}

// Download godoc
// @Summary Start a certificate download
// @Tags Certificates
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/certificates/{id}/download [post]
func (h *CertificateHandler) Download(c *gin.Context) {
	certificate, note, err := h.service.Download(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, certificate, note)
}
