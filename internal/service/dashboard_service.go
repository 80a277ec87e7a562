package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

const (
	recentLearnerCount = 5
	topModuleCount     = 3
)

var dashboardStats = models.DashboardStats{
	TotalLearners:      248,
	ActiveModules:      12,
	CompletionRate:     68,
	CertificatesIssued: 156,
}

type learnerHead interface {
	Head(ctx context.Context, n int) ([]models.Learner, error)
}

type moduleHead interface {
	Head(ctx context.Context, n int) ([]models.Module, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the admin landing page.
type DashboardService struct {
	learners learnerHead
	modules  moduleHead
	cache    *CacheService
	logger   *zap.Logger
	cfg      DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(learners learnerHead, modules moduleHead, cache *CacheService, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{learners: learners, modules: modules, cache: cache, logger: logger, cfg: cfg}
}

// Summary returns the dashboard payload and whether it came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	if cached, hit := s.tryCache(ctx); hit {
		return cached, true, nil
	}

	learners, err := s.learners.Head(ctx, recentLearnerCount)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent learners")
	}
	modules, err := s.modules.Head(ctx, topModuleCount)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load top modules")
	}

	summary := &dto.DashboardResponse{
		Stats:          dashboardStats,
		RecentLearners: learners,
		TopModules:     modules,
	}
	s.persistCache(ctx, summary)
	return summary, false, nil
}

// tryCache treats a failing cache as a miss.
func (s *DashboardService) tryCache(ctx context.Context) (*dto.DashboardResponse, bool) {
	if !s.cache.Enabled() {
		return nil, false
	}
	var cached dto.DashboardResponse
	hit, err := s.cache.Get(ctx, DashboardCacheKey, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *DashboardService) persistCache(ctx context.Context, value *dto.DashboardResponse) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, DashboardCacheKey, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", DashboardCacheKey), zap.Error(err))
	}
}
