package models

import "time"

// ExportKind enumerates exportable datasets.
type ExportKind string

const (
	ExportKindLearners ExportKind = "learners"
	ExportKindReport   ExportKind = "report"
)

// ExportFormat enumerates supported file formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportStatus captures background job lifecycle states.
type ExportStatus string

const (
	ExportStatusQueued     ExportStatus = "QUEUED"
	ExportStatusProcessing ExportStatus = "PROCESSING"
	ExportStatusFinished   ExportStatus = "FINISHED"
	ExportStatusFailed     ExportStatus = "FAILED"
)

// ExportParams are the options captured when the job was requested.
type ExportParams struct {
	Format    ExportFormat   `json:"format"`
	Query     string         `json:"query,omitempty"`
	Status    string         `json:"status,omitempty"`
	Band      CompletionBand `json:"band,omitempty"`
	TimeRange string         `json:"timeRange,omitempty"`
}

// ExportJob tracks one asynchronous export.
type ExportJob struct {
	ID           string       `json:"id"`
	Kind         ExportKind   `json:"kind"`
	Params       ExportParams `json:"params"`
	Status       ExportStatus `json:"status"`
	Progress     int          `json:"progress"`
	ResultURL    *string      `json:"resultUrl,omitempty"`
	ResultPath   string       `json:"-"`
	ErrorMessage *string      `json:"error,omitempty"`
	CreatedBy    string       `json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
	FinishedAt   *time.Time   `json:"finishedAt,omitempty"`
}
