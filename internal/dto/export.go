package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// ExportRequest captures POST /admin/exports payload.
type ExportRequest struct {
	Kind      models.ExportKind     `json:"kind" validate:"required,oneof=learners report"`
	Format    models.ExportFormat   `json:"format" validate:"omitempty,oneof=csv pdf"`
	Query     string                `json:"query,omitempty" validate:"max=200"`
	Status    string                `json:"status,omitempty" validate:"omitempty,oneof=all active inactive"`
	Band      models.CompletionBand `json:"band,omitempty" validate:"omitempty,oneof=all high medium low"`
	TimeRange string                `json:"timeRange,omitempty" validate:"omitempty,oneof=7days 30days 3months 6months 1year"`
}

// ExportJobResponse exposes job progress metadata.
type ExportJobResponse struct {
	ID        string              `json:"id"`
	Kind      models.ExportKind   `json:"kind"`
	Format    models.ExportFormat `json:"format"`
	Status    models.ExportStatus `json:"status"`
	Progress  int                 `json:"progress"`
	ResultURL *string             `json:"resultUrl,omitempty"`
	Error     *string             `json:"error,omitempty"`
}

// NewExportJobResponse projects a job onto its public shape.
func NewExportJobResponse(job *models.ExportJob) *ExportJobResponse {
	resp := &ExportJobResponse{
		ID:        job.ID,
		Kind:      job.Kind,
		Format:    job.Params.Format,
		Status:    job.Status,
		Progress:  job.Progress,
		ResultURL: job.ResultURL,
	}
	if job.ErrorMessage != nil && *job.ErrorMessage != "" {
		resp.Error = job.ErrorMessage
	}
	return resp
}
