package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type activityStore interface {
	Create(ctx context.Context, entry *models.ActivityEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}

// activityRecorder is what mutating services need from the activity log.
type activityRecorder interface {
	Record(ctx context.Context, entry models.ActivityEntry)
}

// ActivityService appends notifications to the admin activity trail.
type ActivityService struct {
	repo   activityStore
	logger *zap.Logger
}

// NewActivityService constructs the activity service.
func NewActivityService(repo activityStore, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, logger: logger}
}

// Record stores entry. A failing store is logged and otherwise ignored.
func (s *ActivityService) Record(ctx context.Context, entry models.ActivityEntry) {
	if s == nil || s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Warn("record activity failed",
			zap.String("action", entry.Action),
			zap.String("resource", entry.Resource),
			zap.Error(err),
		)
	}
}

// List returns the most recent entries, newest first. limit defaults to 50 and is capped at 200.
func (s *ActivityService) List(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "limit must be positive")
	}
	if limit == 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}

// noteActivity builds the log entry for a notification emitted by an operation.
func noteActivity(sessionID, action, resource, resourceID string, note models.Notification) models.ActivityEntry {
	return models.ActivityEntry{
		SessionID:   sessionID,
		Action:      action,
		Resource:    resource,
		ResourceID:  resourceID,
		Title:       note.Title,
		Description: note.Description,
		Variant:     note.Variant,
	}
}

func record(ctx context.Context, rec activityRecorder, entry models.ActivityEntry) {
	if rec == nil {
		return
	}
	rec.Record(ctx, entry)
}
