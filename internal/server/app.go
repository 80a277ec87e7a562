package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/handler"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	"github.com/Wekraft-001/admin-hub/internal/service"
	"github.com/Wekraft-001/admin-hub/pkg/cache"
	"github.com/Wekraft-001/admin-hub/pkg/config"
	"github.com/Wekraft-001/admin-hub/pkg/database"
	"github.com/Wekraft-001/admin-hub/pkg/jobs"
	"github.com/Wekraft-001/admin-hub/pkg/storage"
)

const cacheKeyPrefix = "admin-hub"

type sessionBackend interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// App owns the wired services, the export queue and any external connections.
type App struct {
	Router *gin.Engine

	logger  *zap.Logger
	queue   *jobs.Queue
	exports *service.ExportJobService
	redis   *redis.Client
	db      *sqlx.DB
}

// NewApp connects the configured backends and wires every layer. Memory backends
// need no external services.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{logger: logger}

	needRedis := cfg.Session.Store == config.BackendRedis || cfg.Dashboard.CacheEnabled
	if needRedis {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.redis = client
	}
	if cfg.Activity.Store == config.BackendPostgres {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		app.db = db
	}

	store := repository.NewStore()
	metrics := service.NewMetricsService()
	validate := validator.New()

	var sessions sessionBackend = repository.NewMemorySessionRepository()
	if cfg.Session.Store == config.BackendRedis {
		sessions = repository.NewRedisSessionRepository(app.redis)
	}

	var cacheRepo service.CacheRepository
	if app.redis != nil {
		cacheRepo = repository.NewCacheRepository(app.redis, cacheKeyPrefix)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logger, cfg.Dashboard.CacheEnabled)

	activitySvc, err := app.activityService(ctx, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	authSvc := service.NewAuthService(sessions, activitySvc, metrics, validate, logger, service.AuthConfig{
		Secret:     cfg.Session.Secret,
		LoginDelay: cfg.Session.LoginDelay,
	})

	learnerRepo := repository.NewLearnerRepository(store)
	moduleRepo := repository.NewModuleRepository(store)

	learnerSvc := service.NewLearnerService(learnerRepo, validate, logger)
	moduleSvc := service.NewModuleService(moduleRepo, cacheSvc, activitySvc, validate, logger)
	certificateSvc := service.NewCertificateService(repository.NewTemplateRepository(store), repository.NewCertificateRepository(store), activitySvc, validate, logger)
	mediaSvc := service.NewMediaService(repository.NewMediaRepository(store), activitySvc, validate, logger, service.MediaConfig{
		MaxFileSize:  cfg.Media.MaxFileSizeBytes,
		AllowedMIMEs: cfg.Media.AllowedMIMEs,
	})
	reportSvc := service.NewReportService()
	dashboardSvc := service.NewDashboardService(learnerRepo, moduleRepo, cacheSvc, logger, service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL})
	resetSvc := service.NewResetService(store, moduleSvc, cacheSvc, activitySvc)

	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		app.Close()
		return nil, err
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exporter := service.NewExportService(learnerRepo, reportSvc, files, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, metrics, logger, nil, nil)

	jobRepo := repository.NewExportJobRepository()
	worker := service.NewExportWorker(jobRepo, exporter, metrics, cfg.Exports.WorkerRetries, logger)
	app.queue = jobs.NewQueue("exports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logger,
		OnDrop:     worker.MarkFailed,
	})
	app.exports = service.NewExportJobService(jobRepo, app.queue, exporter, activitySvc, validate, logger, service.ExportJobServiceConfig{
		ResultTTL:       cfg.Exports.SignedURLTTL,
		CleanupInterval: cfg.Exports.CleanupInterval,
	})

	app.Router = NewRouter(RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ServiceName:    cfg.Tracing.ServiceName,
		Tracing:        cfg.Tracing.Enabled,
		Docs:           cfg.Env != config.EnvProduction,
		SessionCookie:  cfg.Session.CookieName,
		Logger:         logger,
		Metrics:        metrics,
		Auth:           authSvc,

		AuthHandler:        handler.NewAuthHandler(authSvc, handler.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Env == config.EnvProduction}),
		DashboardHandler:   handler.NewDashboardHandler(dashboardSvc),
		LearnerHandler:     handler.NewLearnerHandler(learnerSvc),
		ModuleHandler:      handler.NewModuleHandler(moduleSvc),
		CertificateHandler: handler.NewCertificateHandler(certificateSvc),
		MediaHandler:       handler.NewMediaHandler(mediaSvc),
		ReportHandler:      handler.NewReportHandler(reportSvc),
		ActivityHandler:    handler.NewActivityHandler(activitySvc),
		ExportHandler:      handler.NewExportHandler(app.exports),
		SystemHandler:      handler.NewSystemHandler(resetSvc),
		MetricsHandler:     handler.NewMetricsHandler(metrics, app.readinessChecks()...),
	})

	return app, nil
}

// Start launches the export workers and the expired-export cleanup loop.
func (a *App) Start(ctx context.Context) {
	a.queue.Start(ctx)
	a.exports.StartCleanup(ctx)
}

// Close stops background work and releases external connections.
func (a *App) Close() {
	if a.queue != nil {
		a.queue.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("postgres close failed", zap.Error(err))
		}
	}
}

func (a *App) activityService(ctx context.Context, logger *zap.Logger) (*service.ActivityService, error) {
	if a.db == nil {
		return service.NewActivityService(repository.NewMemoryActivityRepository(), logger), nil
	}
	repo := repository.NewActivityRepository(a.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return service.NewActivityService(repo, logger), nil
}

func (a *App) readinessChecks() []handler.ReadinessCheck {
	var checks []handler.ReadinessCheck
	if a.redis != nil {
		checks = append(checks, handler.ReadinessCheck{Name: "redis", Check: func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		}})
	}
	if a.db != nil {
		checks = append(checks, handler.ReadinessCheck{Name: "postgres", Check: a.db.PingContext})
	}
	return checks
}
