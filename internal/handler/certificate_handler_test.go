package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type fakeCertificateService struct {
	lastQuery  string
	lastCreate dto.TemplateRequest
}

func (f *fakeCertificateService) ListTemplates(context.Context) ([]models.CertificateTemplate, error) {
	return []models.CertificateTemplate{{ID: "1", Name: "Standard Completion"}}, nil
}

func (f *fakeCertificateService) CreateTemplate(_ context.Context, _ string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error) {
	f.lastCreate = req
	return &models.CertificateTemplate{ID: "4", Name: req.Name}, models.Notify("Template Created", "Certificate template has been created successfully."), nil
}

func (f *fakeCertificateService) UpdateTemplate(_ context.Context, _ string, id string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error) {
	return &models.CertificateTemplate{ID: id, Name: req.Name}, models.Notify("Template Updated", "Certificate template has been updated successfully."), nil
}

func (f *fakeCertificateService) DeleteTemplate(_ context.Context, _ string, id string) (models.Notification, error) {
	if id != "1" {
		return models.Notification{}, appErrors.Clone(appErrors.ErrNotFound, "template not found")
	}
	return models.Warn("Template Deleted", "Certificate template has been deleted."), nil
}

func (f *fakeCertificateService) ListCertificates(_ context.Context, query string) ([]models.Certificate, error) {
	f.lastQuery = query
	return []models.Certificate{}, nil
}

func (f *fakeCertificateService) Download(_ context.Context, _ string, id string) (*models.Certificate, models.Notification, error) {
	return &models.Certificate{ID: id, CertificateNumber: "CERT-2024-001"}, models.Notify("Download Started", "Downloading certificate CERT-2024-001"), nil
}

func TestCertificateHandlerCreateTemplate(t *testing.T) {
	svc := &fakeCertificateService{}
	handler := NewCertificateHandler(svc)

	c, w := newGinContext(http.MethodPost, "/admin/certificates/templates", []byte(`{"name":"Honors","completionThreshold":90}`))
	handler.CreateTemplate(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Template Created", notificationTitle(decodeEnvelope(t, w)))
	require.NotNil(t, svc.lastCreate.CompletionThreshold)
	assert.Equal(t, 90, *svc.lastCreate.CompletionThreshold)
	assert.Nil(t, svc.lastCreate.BackgroundColor)
}

func TestCertificateHandlerDeleteTemplate(t *testing.T) {
	handler := NewCertificateHandler(&fakeCertificateService{})

	c, w := newGinContext(http.MethodDelete, "/admin/certificates/templates/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.DeleteTemplate(c)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	note := env.Meta["notification"].(map[string]interface{})
	assert.Equal(t, string(models.NotificationDestructive), note["variant"])

	c, w = newGinContext(http.MethodDelete, "/admin/certificates/templates/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	handler.DeleteTemplate(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificateHandlerListAndDownload(t *testing.T) {
	svc := &fakeCertificateService{}
	handler := NewCertificateHandler(svc)

	c, w := newGinContext(http.MethodGet, "/admin/certificates?q=CERT-2024", nil)
	handler.ListCertificates(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CERT-2024", svc.lastQuery)

	c, w = newGinContext(http.MethodPost, "/admin/certificates/1/download", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Download(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Download Started", notificationTitle(decodeEnvelope(t, w)))
}
