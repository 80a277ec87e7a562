package models

// TimeRange enumerates the analytics window selector.
type TimeRange string

const (
	TimeRange7Days   TimeRange = "7days"
	TimeRange30Days  TimeRange = "30days"
	TimeRange3Months TimeRange = "3months"
	TimeRange6Months TimeRange = "6months"
	TimeRange1Year   TimeRange = "1year"

	DefaultTimeRange = TimeRange6Months
)

// Valid reports whether r is a known window.
func (r TimeRange) Valid() bool {
	switch r {
	case TimeRange7Days, TimeRange30Days, TimeRange3Months, TimeRange6Months, TimeRange1Year:
		return true
	}
	return false
}

// StatCard is a headline number with its period-over-period change.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// LearnerProgressPoint is one month of the learner progress series.
type LearnerProgressPoint struct {
	Month     string `json:"month"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Enrolled  int    `json:"enrolled"`
}

// ModuleCompletionPoint compares completions with enrolments for one module.
type ModuleCompletionPoint struct {
	Name       string `json:"name"`
	Completion int    `json:"completion"`
	Enrolled   int    `json:"enrolled"`
}

// Ratio returns completion/enrolled as a rounded percentage.
func (p ModuleCompletionPoint) Ratio() int {
	if p.Enrolled == 0 {
		return 0
	}
	return int(float64(p.Completion)/float64(p.Enrolled)*100 + 0.5)
}

// RankedModule is a module with its completion ratio.
type RankedModule struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Ratio int    `json:"ratio"`
}

// CertificateStatusSlice is one slice of the certificate distribution.
type CertificateStatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EngagementPoint is one week of platform engagement.
type EngagementPoint struct {
	Week     string `json:"week"`
	Sessions int    `json:"sessions"`
	AvgTime  int    `json:"avgTime"`
}

// EngagementSummary aggregates the engagement series.
type EngagementSummary struct {
	TotalSessions     int     `json:"totalSessions"`
	AvgSessionMinutes float64 `json:"avgSessionMinutes"`
	ReturnRatePercent float64 `json:"returnRatePercent"`
}

// ReportOverview bundles every analytics series.
type ReportOverview struct {
	TimeRange         TimeRange                `json:"timeRange"`
	Stats             []StatCard               `json:"stats"`
	LearnerProgress   []LearnerProgressPoint   `json:"learnerProgress"`
	ModuleCompletion  []ModuleCompletionPoint  `json:"moduleCompletion"`
	TopModules        []RankedModule           `json:"topModules"`
	NeedsAttention    []RankedModule           `json:"needsAttention"`
	CertificateStatus []CertificateStatusSlice `json:"certificateStatus"`
	Engagement        []EngagementPoint        `json:"engagement"`
	EngagementSummary EngagementSummary        `json:"engagementSummary"`
}
