package service

import (
	"context"
	"sort"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

const rankedModuleCount = 3

var (
	reportStats = []models.StatCard{
		{Title: "Total Enrollments", Value: "1,248", Change: "+12.5%", Trend: "up"},
		{Title: "Avg. Completion Rate", Value: "67.8%", Change: "+5.2%", Trend: "up"},
		{Title: "Active Modules", Value: "24", Change: "+3", Trend: "up"},
		{Title: "Certificates Issued", Value: "145", Change: "+18", Trend: "up"},
	}

	learnerProgress = []models.LearnerProgressPoint{
		{Month: "Jan", Active: 45, Completed: 12, Enrolled: 60},
		{Month: "Feb", Active: 52, Completed: 18, Enrolled: 68},
		{Month: "Mar", Active: 58, Completed: 25, Enrolled: 75},
		{Month: "Apr", Active: 65, Completed: 30, Enrolled: 82},
		{Month: "May", Active: 70, Completed: 38, Enrolled: 90},
		{Month: "Jun", Active: 78, Completed: 45, Enrolled: 98},
	}

	moduleCompletion = []models.ModuleCompletionPoint{
		{Name: "Introduction to Learning", Completion: 92, Enrolled: 98},
		{Name: "Advanced Concepts", Completion: 78, Enrolled: 85},
		{Name: "Practical Applications", Completion: 65, Enrolled: 80},
		{Name: "Expert Techniques", Completion: 45, Enrolled: 70},
		{Name: "Final Assessment", Completion: 38, Enrolled: 65},
	}

	certificateStatus = []models.CertificateStatusSlice{
		{Name: "Issued", Value: 145},
		{Name: "Pending", Value: 42},
		{Name: "Expired", Value: 18},
	}

	engagement = []models.EngagementPoint{
		{Week: "Week 1", Sessions: 340, AvgTime: 45},
		{Week: "Week 2", Sessions: 380, AvgTime: 52},
		{Week: "Week 3", Sessions: 420, AvgTime: 48},
		{Week: "Week 4", Sessions: 390, AvgTime: 55},
		{Week: "Week 5", Sessions: 450, AvgTime: 58},
		{Week: "Week 6", Sessions: 480, AvgTime: 62},
	}
)

// returnRatePercent has no underlying series; it is published as is.
const returnRatePercent = 78.4

// ReportService serves the analytics overview. The series are fixed and the
// selected time range is echoed without affecting them.
type ReportService struct{}

// NewReportService constructs the report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Overview returns every analytics series for the requested window.
func (s *ReportService) Overview(_ context.Context, timeRange string) (*models.ReportOverview, error) {
	tr := models.TimeRange(timeRange)
	if tr == "" {
		tr = models.DefaultTimeRange
	}
	if !tr.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "range must be one of 7days, 30days, 3months, 6months, 1year")
	}

	return &models.ReportOverview{
		TimeRange:         tr,
		Stats:             append([]models.StatCard(nil), reportStats...),
		LearnerProgress:   append([]models.LearnerProgressPoint(nil), learnerProgress...),
		ModuleCompletion:  append([]models.ModuleCompletionPoint(nil), moduleCompletion...),
		TopModules:        rankModules(moduleCompletion, true),
		NeedsAttention:    rankModules(moduleCompletion, false),
		CertificateStatus: append([]models.CertificateStatusSlice(nil), certificateStatus...),
		Engagement:        append([]models.EngagementPoint(nil), engagement...),
		EngagementSummary: summariseEngagement(engagement),
	}, nil
}

// rankModules orders modules by completion ratio and keeps the first three.
func rankModules(points []models.ModuleCompletionPoint, best bool) []models.RankedModule {
	sorted := append([]models.ModuleCompletionPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri := float64(sorted[i].Completion) / float64(sorted[i].Enrolled)
		rj := float64(sorted[j].Completion) / float64(sorted[j].Enrolled)
		if best {
			return ri > rj
		}
		return ri < rj
	})
	if len(sorted) > rankedModuleCount {
		sorted = sorted[:rankedModuleCount]
	}
	ranked := make([]models.RankedModule, 0, len(sorted))
	for i, p := range sorted {
		ranked = append(ranked, models.RankedModule{Rank: i + 1, Name: p.Name, Ratio: p.Ratio()})
	}
	return ranked
}

func summariseEngagement(points []models.EngagementPoint) models.EngagementSummary {
	var sessions, minutes int
	for _, p := range points {
		sessions += p.Sessions
		minutes += p.AvgTime
	}
	var avg float64
	if len(points) > 0 {
		avg = float64(int(float64(minutes)/float64(len(points))*10+0.5)) / 10
	}
	return models.EngagementSummary{
		TotalSessions:     sessions,
		AvgSessionMinutes: avg,
		ReturnRatePercent: returnRatePercent,
	}
}
