package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

func TestExportJobRepositoryLifecycle(t *testing.T) {
	repo := NewExportJobRepository()
	ctx := context.Background()

	job := &models.ExportJob{Kind: models.ExportKindLearners, Status: models.ExportStatusQueued}
	require.NoError(t, repo.Create(ctx, job))
	require.NotEmpty(t, job.ID)

	status := models.ExportStatusFinished
	url := "/api/v1/exports/token"
	finished := time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Update(ctx, job.ID, UpdateExportJobParams{Status: &status, ResultURL: &url, FinishedAt: &finished}))

	stored, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusFinished, stored.Status)
	require.NotNil(t, stored.ResultURL)
	assert.Equal(t, url, *stored.ResultURL)

	expired, err := repo.ListFinishedBefore(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)

	fresh, err := repo.ListFinishedBefore(ctx, time.Now().Add(-3*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	require.NoError(t, repo.Delete(ctx, job.ID))
	_, err = repo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, job.ID, UpdateExportJobParams{}), ErrNotFound)
}
