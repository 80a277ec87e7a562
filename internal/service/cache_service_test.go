package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheServiceDisabledIsNoop(t *testing.T) {
	repo := newMapCacheRepo()
	svc := NewCacheService(repo, nil, 0, nil, false)

	require.NoError(t, svc.Set(context.Background(), "dash:admin", map[string]int{"a": 1}, 0))
	assert.Empty(t, repo.values)

	var out map[string]int
	hit, err := svc.Get(context.Background(), "dash:admin", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceRoundTripAndInvalidate(t *testing.T) {
	repo := newMapCacheRepo()
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "dash:admin", map[string]int{"learners": 248}, 0))
	require.NoError(t, svc.Set(ctx, "other:key", 1, 0))

	var out map[string]int
	hit, err := svc.Get(ctx, "dash:admin", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 248, out["learners"])

	svc.InvalidateDashboard(ctx)
	hit, err = svc.Get(ctx, "dash:admin", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, repo.values, "other:key")

	assert.Equal(t, float64(1), counterValue(t, metrics, "cache_hits_total", nil))
	assert.Equal(t, float64(1), counterValue(t, metrics, "cache_misses_total", nil))
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	repo := newMapCacheRepo()
	repo.failGet = true
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)

	var out map[string]int
	hit, err := svc.Get(context.Background(), "dash:admin", &out)
	require.Error(t, err)
	assert.False(t, hit)
}
