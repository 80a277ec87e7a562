package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	"github.com/Wekraft-001/admin-hub/pkg/jobs"
)

type exportGenerator interface {
	Generate(ctx context.Context, job *models.ExportJob) (*ExportResult, error)
}

// ExportWorker bridges queue jobs to ExportService.
type ExportWorker struct {
	repo       exportJobStore
	exporter   exportGenerator
	metrics    *MetricsService
	logger     *zap.Logger
	maxRetries int
}

// NewExportWorker constructs a worker. maxRetries should match the queue's retry budget.
func NewExportWorker(repo exportJobStore, exporter exportGenerator, metrics *MetricsService, maxRetries int, logger *zap.Logger) *ExportWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ExportWorker{
		repo:       repo,
		exporter:   exporter,
		metrics:    metrics,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Handle processes a queue job. A failure moves the job back to QUEUED until the
// last attempt, which marks it FAILED. A retry the queue cannot schedule is
// settled by MarkFailed.
func (w *ExportWorker) Handle(ctx context.Context, job jobs.Job) error {
	record, err := w.repo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	processing := models.ExportStatusProcessing
	progress := 10
	if err := w.repo.Update(ctx, job.ID, repository.UpdateExportJobParams{
		Status:   &processing,
		Progress: &progress,
	}); err != nil {
		return err
	}

	result, err := w.exporter.Generate(ctx, record)
	if err != nil {
		msg := err.Error()
		if job.Attempt >= w.maxRetries {
			w.fail(ctx, record, msg)
		} else {
			queued := models.ExportStatusQueued
			reset := 0
			if updateErr := w.repo.Update(ctx, job.ID, repository.UpdateExportJobParams{
				Status:       &queued,
				Progress:     &reset,
				ErrorMessage: &msg,
			}); updateErr != nil {
				w.logger.Sugar().Warnw("failed to mark export queued", "job_id", job.ID, "error", updateErr)
			}
		}
		return err
	}

	finished := models.ExportStatusFinished
	progress = 100
	now := time.Now().UTC()
	url := result.URL
	path := result.RelativePath
	clear := ""
	if err := w.repo.Update(ctx, job.ID, repository.UpdateExportJobParams{
		Status:       &finished,
		Progress:     &progress,
		ResultURL:    &url,
		ResultPath:   &path,
		ErrorMessage: &clear,
		FinishedAt:   &now,
	}); err != nil {
		w.logger.Sugar().Warnw("failed to mark export finished", "job_id", job.ID, "error", err)
		return err
	}
	w.metrics.RecordExportJob(string(record.Kind), string(finished))
	return nil
}

// MarkFailed settles a job the queue could not retry. Jobs that already
// finished or failed are left alone.
func (w *ExportWorker) MarkFailed(job jobs.Job, cause error) {
	ctx := context.Background()
	record, err := w.repo.GetByID(ctx, job.ID)
	if err != nil {
		w.logger.Sugar().Warnw("dropped export not found", "job_id", job.ID, "error", err)
		return
	}
	if record.Status == models.ExportStatusFinished || record.Status == models.ExportStatusFailed {
		return
	}
	w.logger.Sugar().Warnw("export dropped by queue", "job_id", job.ID, "attempt", job.Attempt, "error", cause)
	w.fail(ctx, record, cause.Error())
}

func (w *ExportWorker) fail(ctx context.Context, record *models.ExportJob, msg string) {
	failed := models.ExportStatusFailed
	progress := 100
	now := time.Now().UTC()
	if err := w.repo.Update(ctx, record.ID, repository.UpdateExportJobParams{
		Status:       &failed,
		Progress:     &progress,
		ErrorMessage: &msg,
		FinishedAt:   &now,
	}); err != nil {
		w.logger.Sugar().Warnw("failed to mark export failed", "job_id", record.ID, "error", err)
	}
	w.metrics.RecordExportJob(string(record.Kind), string(failed))
}
