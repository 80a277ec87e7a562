package models

import "strings"

// LearnerStatus enumerates learner account states.
type LearnerStatus string

const (
	LearnerStatusActive   LearnerStatus = "active"
	LearnerStatusInactive LearnerStatus = "inactive"
)

// CompletionBand buckets completion percentages for filtering.
type CompletionBand string

const (
	BandAll    CompletionBand = "all"
	BandHigh   CompletionBand = "high"
	BandMedium CompletionBand = "medium"
	BandLow    CompletionBand = "low"
)

// Band thresholds: high >= 75, medium in [50, 75), low < 50.
const (
	HighCompletionThreshold   = 75
	MediumCompletionThreshold = 50
)

// Learner is a course participant as shown in the admin roster.
type Learner struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Avatar               string        `json:"avatar"`
	CompletionPercentage int           `json:"completionPercentage"`
	EnrolledDate         string        `json:"enrolledDate"`
	LastActive           string        `json:"lastActive"`
	CertificateIssued    bool          `json:"certificateIssued"`
	Status               LearnerStatus `json:"status"`
}

// Band classifies the learner's completion percentage.
func (l Learner) Band() CompletionBand {
	switch {
	case l.CompletionPercentage >= HighCompletionThreshold:
		return BandHigh
	case l.CompletionPercentage >= MediumCompletionThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

// BadgeVariant maps completion to the progress badge style.
func (l Learner) BadgeVariant() string {
	switch l.Band() {
	case BandHigh:
		return "default"
	case BandMedium:
		return "secondary"
	default:
		return "outline"
	}
}

// LearnerFilter narrows the learner roster. Empty fields match everything.
type LearnerFilter struct {
	Query  string
	Status string
	Band   CompletionBand
}

// Matches reports whether l satisfies every predicate of the filter.
func (f LearnerFilter) Matches(l Learner) bool {
	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(l.Name), q) && !strings.Contains(strings.ToLower(l.Email), q) {
			return false
		}
	}
	if f.Status != "" && f.Status != "all" && string(l.Status) != f.Status {
		return false
	}
	if f.Band != "" && f.Band != BandAll && l.Band() != f.Band {
		return false
	}
	return true
}
