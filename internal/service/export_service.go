package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/pkg/export"
	"github.com/Wekraft-001/admin-hub/pkg/storage"
)

type learnerLister interface {
	List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, error)
}

type reportProvider interface {
	Overview(ctx context.Context, timeRange string) (*models.ReportOverview, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ExportFormat
	ExpiresAt    time.Time
}

// ExportService builds export documents and persists rendered files.
type ExportService struct {
	learners learnerLister
	reports  reportProvider
	storage  fileStorage
	csv      documentRenderer
	pdf      documentRenderer
	signer   *storage.SignedURLSigner
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      ExportConfig
	now      func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the default exporters.
func NewExportService(learners learnerLister, reports reportProvider, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, metrics *MetricsService, logger *zap.Logger, csv, pdf documentRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		learners: learners,
		reports:  reports,
		storage:  store,
		csv:      csv,
		pdf:      pdf,
		signer:   signer,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Generate renders the job's document, stores it and signs a download URL.
func (s *ExportService) Generate(ctx context.Context, job *models.ExportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	start := time.Now()
	doc, err := s.buildDocument(ctx, job)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Params.Format {
	case models.ExportFormatCSV:
		payload, err = s.csv.Render(doc)
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(doc)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveExportRender(string(job.Kind), string(job.Params.Format), time.Since(start))

	relPath, err := s.storage.Save(s.buildFilename(job), payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          s.downloadURL(token),
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (*storage.SignedToken, error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) downloadURL(token string) string {
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return fmt.Sprintf("%s/exports/%s", prefix, token)
}

func (s *ExportService) buildFilename(job *models.ExportJob) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	name := string(job.Kind)
	if job.Kind == models.ExportKindReport {
		name += "_" + sanitizeFilename(job.Params.TimeRange)
	}
	suffix := job.ID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("%s_%s_%s.%s", name, timestamp, sanitizeFilename(suffix), job.Params.Format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func (s *ExportService) buildDocument(ctx context.Context, job *models.ExportJob) (export.Document, error) {
	switch job.Kind {
	case models.ExportKindLearners:
		return s.buildLearnerDocument(ctx, job.Params)
	case models.ExportKindReport:
		return s.buildReportDocument(ctx, job.Params)
	default:
		return export.Document{}, fmt.Errorf("unsupported export kind %s", job.Kind)
	}
}

func (s *ExportService) buildLearnerDocument(ctx context.Context, params models.ExportParams) (export.Document, error) {
	learners, err := s.learners.List(ctx, models.LearnerFilter{Query: params.Query, Status: params.Status, Band: params.Band})
	if err != nil {
		return export.Document{}, err
	}
	rows := make([]map[string]string, 0, len(learners))
	for _, l := range learners {
		rows = append(rows, map[string]string{
			"Name":        l.Name,
			"Email":       l.Email,
			"Status":      string(l.Status),
			"Progress":    strconv.Itoa(l.CompletionPercentage) + "%",
			"Enrolled":    l.EnrolledDate,
			"Last Active": l.LastActive,
			"Certificate": yesNo(l.CertificateIssued),
		})
	}
	data := export.Dataset{
		Headers: []string{"Name", "Email", "Status", "Progress", "Enrolled", "Last Active", "Certificate"},
		Rows:    rows,
	}
	return export.Single("Learners", data), nil
}

func (s *ExportService) buildReportDocument(ctx context.Context, params models.ExportParams) (export.Document, error) {
	overview, err := s.reports.Overview(ctx, params.TimeRange)
	if err != nil {
		return export.Document{}, err
	}

	stats := make([]map[string]string, 0, len(overview.Stats))
	for _, st := range overview.Stats {
		stats = append(stats, map[string]string{"Metric": st.Title, "Value": st.Value, "Change": st.Change})
	}
	progress := make([]map[string]string, 0, len(overview.LearnerProgress))
	for _, p := range overview.LearnerProgress {
		progress = append(progress, map[string]string{
			"Month":     p.Month,
			"Enrolled":  strconv.Itoa(p.Enrolled),
			"Active":    strconv.Itoa(p.Active),
			"Completed": strconv.Itoa(p.Completed),
		})
	}
	modules := make([]map[string]string, 0, len(overview.ModuleCompletion))
	for _, m := range overview.ModuleCompletion {
		modules = append(modules, map[string]string{
			"Module":     m.Name,
			"Completed":  strconv.Itoa(m.Completion),
			"Enrolled":   strconv.Itoa(m.Enrolled),
			"Completion": strconv.Itoa(m.Ratio()) + "%",
		})
	}
	certs := make([]map[string]string, 0, len(overview.CertificateStatus))
	for _, c := range overview.CertificateStatus {
		certs = append(certs, map[string]string{"Status": c.Name, "Count": strconv.Itoa(c.Value)})
	}
	weeks := make([]map[string]string, 0, len(overview.Engagement))
	for _, e := range overview.Engagement {
		weeks = append(weeks, map[string]string{
			"Week":            e.Week,
			"Sessions":        strconv.Itoa(e.Sessions),
			"Avg. Time (min)": strconv.Itoa(e.AvgTime),
		})
	}

	return export.Document{
		Title: fmt.Sprintf("Analytics Report (%s)", overview.TimeRange),
		Sections: []export.Section{
			{Title: "Overview", Data: export.Dataset{Headers: []string{"Metric", "Value", "Change"}, Rows: stats}},
			{Title: "Learner Progress", Data: export.Dataset{Headers: []string{"Month", "Enrolled", "Active", "Completed"}, Rows: progress}},
			{Title: "Module Performance", Data: export.Dataset{Headers: []string{"Module", "Completed", "Enrolled", "Completion"}, Rows: modules}},
			{Title: "Certificates", Data: export.Dataset{Headers: []string{"Status", "Count"}, Rows: certs}},
			{Title: "Engagement", Data: export.Dataset{Headers: []string{"Week", "Sessions", "Avg. Time (min)"}, Rows: weeks}},
		},
	}, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
