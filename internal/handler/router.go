package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/middleware"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/logger"
	corsmiddleware "github.com/noah-isme/kmq-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/kmq-gateway/pkg/middleware/requestid"
	"github.com/noah-isme/kmq-gateway/pkg/response"
)

// RouterConfig shapes the HTTP surface.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	// Tokens enables bearer auth on the API group when non-nil.
	Tokens middleware.TokenValidator
}

// Handlers groups the route handlers.
type Handlers struct {
	Query     *QueryHandler
	Documents *DocumentHandler
	System    *SystemHandler
}

// NewRouter wires middleware and routes onto a new engine.
func NewRouter(cfg RouterConfig, h Handlers, metrics middleware.RequestObserver, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	r.GET("/health", h.System.Health)
	r.GET("/ready", h.System.Ready)
	r.GET("/metrics", h.System.Prometheus)
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := r.Group(prefix)
	scope := func(scopes ...string) []gin.HandlerFunc { return nil }
	if cfg.Tokens != nil {
		api.Use(middleware.Auth(cfg.Tokens))
		scope = func(scopes ...string) []gin.HandlerFunc {
			return []gin.HandlerFunc{middleware.RequireScope(scopes...)}
		}
	}

	records := api.Group("", scope(middleware.ScopeRecordsRead)...)
	records.GET("/sites", h.Query.Sites)
	records.GET("/attendance-logs", h.Query.AttendanceLogs)
	records.GET("/support-reports", h.Query.SupportReports)
	records.GET("/lesson-plans", h.Query.LessonPlans)
	records.GET("/assessments", h.Query.Assessments)

	docsRead := api.Group("/documents", scope(middleware.ScopeDocumentsRead, middleware.ScopeDocumentsWrite)...)
	docsRead.GET("/spreadsheets", h.Documents.ListSpreadsheets)
	docsRead.GET("/spreadsheets/:id/values", h.Documents.ReadSheet)

	docsWrite := api.Group("/documents", scope(middleware.ScopeDocumentsWrite)...)
	docsWrite.POST("/spreadsheets", h.Documents.CreateSpreadsheet)
	docsWrite.POST("/forms", h.Documents.CreateForm)

	system := api.Group("/system", scope(middleware.ScopeAdmin)...)
	system.GET("/metrics", h.System.Metrics)
	system.POST("/cache/invalidate", h.System.InvalidateCache)

	return r
}
