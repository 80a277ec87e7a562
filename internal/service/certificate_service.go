package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type templateRepository interface {
	List(ctx context.Context) ([]models.CertificateTemplate, error)
	FindByID(ctx context.Context, id string) (*models.CertificateTemplate, error)
	Create(ctx context.Context, tpl *models.CertificateTemplate) error
	Update(ctx context.Context, tpl *models.CertificateTemplate) error
	Delete(ctx context.Context, id string) error
}

type certificateRepository interface {
	Search(ctx context.Context, query string) ([]models.Certificate, error)
	FindByID(ctx context.Context, id string) (*models.Certificate, error)
}

// CertificateService manages certificate templates and reads issued certificates.
type CertificateService struct {
	templates    templateRepository
	certificates certificateRepository
	activity     activityRecorder
	validator    *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// NewCertificateService constructs the certificate service.
func NewCertificateService(templates templateRepository, certificates certificateRepository, activity activityRecorder, validate *validator.Validate, logger *zap.Logger) *CertificateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CertificateService{
		templates:    templates,
		certificates: certificates,
		activity:     activity,
		validator:    validate,
		logger:       logger,
		now:          time.Now,
	}
}

// ListTemplates returns every template in insertion order.
func (s *CertificateService) ListTemplates(ctx context.Context) ([]models.CertificateTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list templates")
	}
	return templates, nil
}

// CreateTemplate appends a template built from the form defaults and req.
func (s *CertificateService) CreateTemplate(ctx context.Context, sessionID string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	tpl := req.ApplyTo(dto.DefaultTemplate())
	tpl.CreatedDate = s.now().UTC().Format("2006-01-02")
	if err := s.templates.Create(ctx, &tpl); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create template")
	}

	note := models.Notify("Template Created", "Certificate template has been created successfully.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityCreate, "certificate_template", tpl.ID, note))
	return &tpl, note, nil
}

// UpdateTemplate overlays req on the stored template. Id and creation date are kept.
func (s *CertificateService) UpdateTemplate(ctx context.Context, sessionID, id string, req dto.TemplateRequest) (*models.CertificateTemplate, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	current, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, models.Notification{}, templateError(err, "failed to load template")
	}
	updated := req.ApplyTo(*current)
	updated.ID = current.ID
	updated.CreatedDate = current.CreatedDate
	if err := s.templates.Update(ctx, &updated); err != nil {
		return nil, models.Notification{}, templateError(err, "failed to update template")
	}

	note := models.Notify("Template Updated", "Certificate template has been updated successfully.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityUpdate, "certificate_template", id, note))
	return &updated, note, nil
}

// DeleteTemplate removes exactly the template with id.
func (s *CertificateService) DeleteTemplate(ctx context.Context, sessionID, id string) (models.Notification, error) {
	if err := s.templates.Delete(ctx, id); err != nil {
		return models.Notification{}, templateError(err, "failed to delete template")
	}
	note := models.Warn("Template Deleted", "Certificate template has been deleted.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityDelete, "certificate_template", id, note))
	return note, nil
}

// ListCertificates returns issued certificates whose learner name or number contains query.
func (s *CertificateService) ListCertificates(ctx context.Context, query string) ([]models.Certificate, error) {
	certs, err := s.certificates.Search(ctx, query)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list certificates")
	}
	return certs, nil
}

// Download acknowledges a certificate download. No file is produced.
func (s *CertificateService) Download(ctx context.Context, sessionID, id string) (*models.Certificate, models.Notification, error) {
	cert, err := s.certificates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.Notification{}, appErrors.Clone(appErrors.ErrNotFound, "certificate not found")
		}
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load certificate")
	}
	note := models.Notify("Download Started", fmt.Sprintf("Downloading certificate %s", cert.CertificateNumber))
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityDownload, "certificate", id, note))
	return cert, note, nil
}

func templateError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "template not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
