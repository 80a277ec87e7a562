package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/handler"
	"github.com/Wekraft-001/admin-hub/internal/middleware"
	"github.com/Wekraft-001/admin-hub/internal/service"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/logger"
	corsmiddleware "github.com/Wekraft-001/admin-hub/pkg/middleware/cors"
	reqidmiddleware "github.com/Wekraft-001/admin-hub/pkg/middleware/requestid"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

// RouterConfig carries everything the HTTP surface needs. Nil handlers leave their routes unmounted.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	ServiceName    string
	Tracing        bool
	Docs           bool
	SessionCookie  string
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Auth           *service.AuthService

	AuthHandler        *handler.AuthHandler
	DashboardHandler   *handler.DashboardHandler
	LearnerHandler     *handler.LearnerHandler
	ModuleHandler      *handler.ModuleHandler
	CertificateHandler *handler.CertificateHandler
	MediaHandler       *handler.MediaHandler
	ReportHandler      *handler.ReportHandler
	ActivityHandler    *handler.ActivityHandler
	ExportHandler      *handler.ExportHandler
	SystemHandler      *handler.SystemHandler
	MetricsHandler     *handler.MetricsHandler
}

// NewRouter builds the gin engine with the shared middleware chain and every admin route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.WithResponseMeta())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	if cfg.MetricsHandler != nil {
		r.GET("/health", cfg.MetricsHandler.Health)
		r.GET("/ready", cfg.MetricsHandler.Ready)
		r.GET("/metrics", cfg.MetricsHandler.Prometheus)
	}
	if cfg.Docs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.SystemHandler != nil {
		r.GET("/", cfg.SystemHandler.Index)
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.ExportHandler != nil {
		api.GET("/exports/:token", cfg.ExportHandler.Download)
	}

	admin := api.Group("/admin")
	if cfg.AuthHandler != nil {
		admin.POST("/login", cfg.AuthHandler.Login)
		admin.POST("/logout", cfg.AuthHandler.Logout)
		admin.GET("/session", cfg.AuthHandler.Session)
	}

	protected := admin.Group("")
	if cfg.Auth != nil {
		protected.Use(middleware.RequireSession(cfg.Auth, cfg.SessionCookie))
	} else {
		protected.Use(func(c *gin.Context) {
			response.Error(c, appErrors.Clone(appErrors.ErrInternal, "session guard not configured"))
			c.Abort()
		})
	}

	if cfg.DashboardHandler != nil {
		protected.GET("/dashboard", cfg.DashboardHandler.Summary)
	}

	if cfg.LearnerHandler != nil {
		protected.GET("/users", cfg.LearnerHandler.List)
		protected.GET("/users/:id", cfg.LearnerHandler.Get)
	}

	if cfg.ModuleHandler != nil {
		modules := protected.Group("/modules")
		modules.GET("", cfg.ModuleHandler.List)
		modules.POST("", cfg.ModuleHandler.Create)
		modules.PUT("/:id", cfg.ModuleHandler.Update)
		modules.DELETE("/:id", cfg.ModuleHandler.Delete)
		modules.POST("/reorder", cfg.ModuleHandler.Move)
		modules.POST("/drag/start", cfg.ModuleHandler.DragStart)
		modules.POST("/drag/over", cfg.ModuleHandler.DragOver)
		modules.POST("/drag/end", cfg.ModuleHandler.DragEnd)
		modules.POST("/drag/cancel", cfg.ModuleHandler.DragCancel)
	}

	if cfg.CertificateHandler != nil {
		certificates := protected.Group("/certificates")
		certificates.GET("", cfg.CertificateHandler.ListCertificates)
		certificates.POST("/:id/download", cfg.CertificateHandler.Download)
		certificates.GET("/templates", cfg.CertificateHandler.ListTemplates)
		certificates.POST("/templates", cfg.CertificateHandler.CreateTemplate)
		certificates.PUT("/templates/:id", cfg.CertificateHandler.UpdateTemplate)
		certificates.DELETE("/templates/:id", cfg.CertificateHandler.DeleteTemplate)
	}

	if cfg.ReportHandler != nil {
		protected.GET("/reports", cfg.ReportHandler.Overview)
	}

	if cfg.MediaHandler != nil {
		media := protected.Group("/media")
		media.GET("", cfg.MediaHandler.List)
		media.GET("/stats", cfg.MediaHandler.Stats)
		media.POST("/uploads", cfg.MediaHandler.Upload)
		media.DELETE("/:id", cfg.MediaHandler.Delete)
		media.POST("/:id/copy-url", cfg.MediaHandler.CopyURL)
	}

	if cfg.ActivityHandler != nil {
		protected.GET("/activity", cfg.ActivityHandler.List)
	}

	if cfg.ExportHandler != nil {
		protected.POST("/exports", cfg.ExportHandler.Create)
		protected.GET("/exports/:id", cfg.ExportHandler.Status)
	}

	if cfg.SystemHandler != nil {
		protected.POST("/reset", cfg.SystemHandler.Reset)
	}

	return r
}
