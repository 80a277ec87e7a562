package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// UpdateExportJobParams defines the mutable fields of an export job.
type UpdateExportJobParams struct {
	Status       *models.ExportStatus
	Progress     *int
	ResultURL    *string
	ResultPath   *string
	ErrorMessage *string
	FinishedAt   *time.Time
}

// ExportJobRepository tracks export jobs for the lifetime of the process.
type ExportJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]*models.ExportJob
}

// NewExportJobRepository constructs an empty job registry.
func NewExportJobRepository() *ExportJobRepository {
	return &ExportJobRepository{jobs: make(map[string]*models.ExportJob)}
}

// Create registers a job, assigning id and creation time when unset.
func (r *ExportJobRepository) Create(_ context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

// GetByID returns a copy of the job.
func (r *ExportJobRepository) GetByID(_ context.Context, id string) (*models.ExportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *job
	return &found, nil
}

// Update applies the non-nil fields of params.
func (r *ExportJobRepository) Update(_ context.Context, id string, params UpdateExportJobParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Progress != nil {
		job.Progress = *params.Progress
	}
	if params.ResultURL != nil {
		url := *params.ResultURL
		job.ResultURL = &url
	}
	if params.ResultPath != nil {
		job.ResultPath = *params.ResultPath
	}
	if params.ErrorMessage != nil {
		msg := *params.ErrorMessage
		job.ErrorMessage = &msg
	}
	if params.FinishedAt != nil {
		ts := *params.FinishedAt
		job.FinishedAt = &ts
	}
	return nil
}

// ListFinishedBefore returns finished or failed jobs that completed before cutoff, oldest first.
func (r *ExportJobRepository) ListFinishedBefore(_ context.Context, cutoff time.Time, limit int) ([]models.ExportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ExportJob, 0)
	for _, job := range r.jobs {
		if job.FinishedAt != nil && job.FinishedAt.Before(cutoff) {
			out = append(out, *job)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinishedAt.Before(*out[j].FinishedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete forgets a job.
func (r *ExportJobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}
