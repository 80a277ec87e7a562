package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

func TestReportServiceOverviewDefaults(t *testing.T) {
	overview, err := NewReportService().Overview(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, models.TimeRange6Months, overview.TimeRange)
	require.Len(t, overview.Stats, 4)
	assert.Equal(t, "Total Enrollments", overview.Stats[0].Title)
	assert.Equal(t, "1,248", overview.Stats[0].Value)
	assert.Len(t, overview.LearnerProgress, 6)
	assert.Len(t, overview.ModuleCompletion, 5)
	assert.Len(t, overview.CertificateStatus, 3)
	assert.Len(t, overview.Engagement, 6)

	assert.Equal(t, []models.RankedModule{
		{Rank: 1, Name: "Introduction to Learning", Ratio: 94},
		{Rank: 2, Name: "Advanced Concepts", Ratio: 92},
		{Rank: 3, Name: "Practical Applications", Ratio: 81},
	}, overview.TopModules)
	assert.Equal(t, []models.RankedModule{
		{Rank: 1, Name: "Final Assessment", Ratio: 58},
		{Rank: 2, Name: "Expert Techniques", Ratio: 64},
		{Rank: 3, Name: "Practical Applications", Ratio: 81},
	}, overview.NeedsAttention)

	assert.Equal(t, models.EngagementSummary{TotalSessions: 2460, AvgSessionMinutes: 53.3, ReturnRatePercent: 78.4}, overview.EngagementSummary)
}

func TestReportServiceDataIgnoresTimeRange(t *testing.T) {
	svc := NewReportService()
	base, err := svc.Overview(context.Background(), "6months")
	require.NoError(t, err)

	for _, r := range []string{"7days", "30days", "3months", "1year"} {
		got, err := svc.Overview(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, models.TimeRange(r), got.TimeRange)
		got.TimeRange = base.TimeRange
		assert.Equal(t, base, got)
	}
}

func TestReportServiceRejectsUnknownRange(t *testing.T) {
	_, err := NewReportService().Overview(context.Background(), "2weeks")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceOverviewReturnsCopies(t *testing.T) {
	svc := NewReportService()
	first, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	first.Stats[0].Value = "0"

	second, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1,248", second.Stats[0].Value)
}
