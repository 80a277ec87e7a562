package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// LearnerListQuery binds the roster filters.
type LearnerListQuery struct {
	Query  string `form:"q" validate:"max=200"`
	Status string `form:"status" validate:"omitempty,oneof=all active inactive"`
	Band   string `form:"band" validate:"omitempty,oneof=all high medium low"`
}

// Filter converts the query into a domain filter.
func (q LearnerListQuery) Filter() models.LearnerFilter {
	return models.LearnerFilter{Query: q.Query, Status: q.Status, Band: models.CompletionBand(q.Band)}
}

// LearnerView is a roster row with its derived band and badge.
type LearnerView struct {
	models.Learner
	Band  models.CompletionBand `json:"band"`
	Badge string                `json:"badge"`
}

// NewLearnerView decorates a learner for display.
func NewLearnerView(l models.Learner) LearnerView {
	return LearnerView{Learner: l, Band: l.Band(), Badge: l.BadgeVariant()}
}
