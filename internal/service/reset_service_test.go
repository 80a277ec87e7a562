package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
)

func TestResetServiceRestoresSeed(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore()
	modules := NewModuleService(repository.NewModuleRepository(store), nil, nil, nil, nil)
	cache := &invalidationCounter{}
	activity := &recordingActivity{}
	reset := NewResetService(store, modules, cache, activity)

	_, err := modules.Delete(ctx, "s1", "1", true)
	require.NoError(t, err)
	_, err = modules.DragStart(ctx, "s1", dto.DragRequest{Index: intPtr(0)})
	require.NoError(t, err)

	note := reset.Reset(ctx, "s1")
	assert.Equal(t, "Data Reset", note.Title)
	assert.Equal(t, models.ActivityReset, activity.last(t).Action)
	assert.Equal(t, 1, cache.count)

	list, err := modules.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", list[0].ID)

	// the drag was forgotten, so DragEnd has no index to clear
	state, _, err := modules.DragEnd(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, state.Dragging)
}
