package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

// recordingActivity captures entries recorded by services under test.
type recordingActivity struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
}

func (r *recordingActivity) Record(_ context.Context, entry models.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingActivity) last(t *testing.T) models.ActivityEntry {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.entries)
	return r.entries[len(r.entries)-1]
}

type activityStoreStub struct {
	createErr error
	listErr   error
	lastLimit int
	created   []models.ActivityEntry
	list      []models.ActivityEntry
}

func (s *activityStoreStub) Create(_ context.Context, entry *models.ActivityEntry) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *entry)
	return nil
}

func (s *activityStoreStub) ListRecent(_ context.Context, limit int) ([]models.ActivityEntry, error) {
	s.lastLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func TestActivityServiceListLimits(t *testing.T) {
	store := &activityStoreStub{}
	svc := NewActivityService(store, zap.NewNop())
	ctx := context.Background()

	entries, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Equal(t, 50, store.lastLimit)

	_, err = svc.List(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, 200, store.lastLimit)

	_, err = svc.List(ctx, -1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation.Code))
}

func TestActivityServiceListError(t *testing.T) {
	svc := NewActivityService(&activityStoreStub{listErr: errors.New("db down")}, nil)
	_, err := svc.List(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestActivityServiceRecordSwallowsFailures(t *testing.T) {
	store := &activityStoreStub{createErr: errors.New("db down")}
	svc := NewActivityService(store, zap.NewNop())

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), models.ActivityEntry{Action: models.ActivityCreate, Resource: "module"})
	})

	store.createErr = nil
	svc.Record(context.Background(), noteActivity("s1", models.ActivityDelete, "media", "3", models.Notify("File Deleted", "gone")))
	require.Len(t, store.created, 1)
	assert.Equal(t, "s1", store.created[0].SessionID)
	assert.Equal(t, "File Deleted", store.created[0].Title)
	assert.Equal(t, models.NotificationDefault, store.created[0].Variant)
}
