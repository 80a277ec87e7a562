package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/jobs"
	"github.com/Wekraft-001/admin-hub/pkg/storage"
)

type exportJobStore interface {
	Create(ctx context.Context, job *models.ExportJob) error
	GetByID(ctx context.Context, id string) (*models.ExportJob, error)
	Update(ctx context.Context, id string, params repository.UpdateExportJobParams) error
	ListFinishedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.ExportJob, error)
	Delete(ctx context.Context, id string) error
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type exportFiles interface {
	ParseToken(token string, allowExpired bool) (*storage.SignedToken, error)
	Open(relPath string) (*os.File, error)
	Delete(relPath string) error
	Cleanup(ttl time.Duration) ([]string, error)
}

// ExportJobServiceConfig governs cleanup.
type ExportJobServiceConfig struct {
	ResultTTL       time.Duration
	CleanupInterval time.Duration
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    models.ExportFormat
	ExpiresAt time.Time
}

// ExportJobService orchestrates the export job lifecycle.
type ExportJobService struct {
	repo      exportJobStore
	queue     jobDispatcher
	files     exportFiles
	activity  activityRecorder
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportJobServiceConfig
}

// NewExportJobService constructs the export job service.
func NewExportJobService(repo exportJobStore, queue jobDispatcher, files exportFiles, activity activityRecorder, validate *validator.Validate, logger *zap.Logger, cfg ExportJobServiceConfig) *ExportJobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportJobService{
		repo:      repo,
		queue:     queue,
		files:     files,
		activity:  activity,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateJob validates the request, persists the job and enqueues it.
func (s *ExportJobService) CreateJob(ctx context.Context, sessionID string, req dto.ExportRequest) (*dto.ExportJobResponse, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	format := req.Format
	if format == "" {
		format = models.ExportFormatCSV
	}
	if req.Kind == models.ExportKindLearners && format != models.ExportFormatCSV {
		return nil, models.Notification{}, appErrors.Clone(appErrors.ErrValidation, "learner exports are only available as csv")
	}
	params := models.ExportParams{Format: format}
	switch req.Kind {
	case models.ExportKindLearners:
		params.Query, params.Status, params.Band = req.Query, req.Status, req.Band
	case models.ExportKindReport:
		params.TimeRange = req.TimeRange
		if params.TimeRange == "" {
			params.TimeRange = string(models.DefaultTimeRange)
		}
	}

	job := &models.ExportJob{
		Kind:      req.Kind,
		Params:    params,
		Status:    models.ExportStatusQueued,
		CreatedBy: sessionID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create export job")
	}
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Kind)}); err != nil {
		status := models.ExportStatusFailed
		msg := "failed to enqueue job"
		progress := 100
		now := time.Now().UTC()
		_ = s.repo.Update(ctx, job.ID, repository.UpdateExportJobParams{
			Status:       &status,
			Progress:     &progress,
			ErrorMessage: &msg,
			FinishedAt:   &now,
		})
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}

	note := models.Notify("Export Started", "Learner data is being prepared for download.")
	if req.Kind == models.ExportKindReport {
		note = models.Notify("Export Started", "Report data is being prepared for download.")
	}
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityExport, "export", job.ID, note))
	return dto.NewExportJobResponse(job), note, nil
}

// GetStatus exposes job metadata.
func (s *ExportJobService) GetStatus(ctx context.Context, id string) (*dto.ExportJobResponse, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	return dto.NewExportJobResponse(job), nil
}

// ResolveDownload validates token and opens the stored export file.
func (s *ExportJobService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	signed, err := s.files.ParseToken(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	job, err := s.repo.GetByID(ctx, signed.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	if job.ResultURL == nil || !strings.HasSuffix(*job.ResultURL, token) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "token mismatch")
	}
	if job.Status != models.ExportStatusFinished {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "export not ready")
	}
	file, err := s.files.Open(signed.Path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return &ExportDownload{
		File:      file,
		Filename:  filepath.Base(signed.Path),
		Format:    job.Params.Format,
		ExpiresAt: signed.ExpiresAt,
	}, nil
}

// StartCleanup boots a goroutine that purges expired exports periodically.
func (s *ExportJobService) StartCleanup(ctx context.Context) {
	if s.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CleanupExpired(ctx)
			}
		}
	}()
}

// CleanupExpired deletes files and records of jobs that finished more than ResultTTL ago.
func (s *ExportJobService) CleanupExpired(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.ResultTTL)
	for {
		expired, err := s.repo.ListFinishedBefore(ctx, cutoff, 100)
		if err != nil {
			s.logger.Sugar().Warnw("cleanup list failed", "error", err)
			return
		}
		for _, job := range expired {
			if job.ResultPath != "" {
				if err := s.files.Delete(job.ResultPath); err != nil {
					s.logger.Sugar().Warnw("cleanup delete failed", "job_id", job.ID, "error", err)
				}
			}
			if err := s.repo.Delete(ctx, job.ID); err != nil {
				s.logger.Sugar().Warnw("cleanup forget job failed", "job_id", job.ID, "error", err)
			}
		}
		if len(expired) < 100 {
			break
		}
	}
	if _, err := s.files.Cleanup(s.cfg.ResultTTL); err != nil {
		s.logger.Sugar().Warnw("filesystem cleanup failed", "error", err)
	}
}
