package service

import (
	"context"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

type seedResetter interface {
	Reset()
}

type dragClearer interface {
	ClearDrags()
}

// ResetService restores every collection to its seed, the equivalent of reloading the app.
type ResetService struct {
	store    seedResetter
	drags    dragClearer
	cache    dashboardInvalidator
	activity activityRecorder
}

// NewResetService constructs the reset service.
func NewResetService(store seedResetter, drags dragClearer, cache dashboardInvalidator, activity activityRecorder) *ResetService {
	return &ResetService{store: store, drags: drags, cache: cache, activity: activity}
}

// Reset re-seeds the store and forgets in-progress drags.
func (s *ResetService) Reset(ctx context.Context, sessionID string) models.Notification {
	s.store.Reset()
	if s.drags != nil {
		s.drags.ClearDrags()
	}
	if s.cache != nil {
		s.cache.InvalidateDashboard(ctx)
	}
	note := models.Notify("Data Reset", "All collections have been restored to their initial data.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityReset, "store", "", note))
	return note
}
