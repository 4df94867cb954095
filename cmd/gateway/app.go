package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/handler"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/internal/service"
	"github.com/noah-isme/kmq-gateway/internal/tools"
	"github.com/noah-isme/kmq-gateway/pkg/cache"
	"github.com/noah-isme/kmq-gateway/pkg/config"
	"github.com/noah-isme/kmq-gateway/pkg/database"
	"github.com/noah-isme/kmq-gateway/pkg/gdocs"
	"github.com/noah-isme/kmq-gateway/pkg/logger"
)

// app holds the wired dependencies shared by the serve and mcp commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	db    *sqlx.DB
	redis *redis.Client

	store     *repository.Store
	cacheRepo *repository.CacheRepository
	cache     *service.CacheService
	metrics   *service.MetricsService

	sites          *service.SiteService
	attendanceLogs *service.AttendanceLogService
	supportReports *service.SupportReportService
	lessonPlans    *service.LessonPlanService
	assessments    *service.AssessmentService
	documents      *service.DocumentService
	exports        *service.ExportService
	tokens         *service.TokenService
}

func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logr, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logr, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		_ = logr.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logr,
		db:      db,
		store:   repository.NewStore(db, cfg.Database.ReadOnlyTx),
		metrics: service.NewMetricsService(),
	}

	cacheEnabled := cfg.Cache.Enabled
	if cacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, reference cache disabled", zap.Error(err))
			cacheEnabled = false
		} else {
			a.redis = client
		}
	}
	a.cacheRepo = repository.NewCacheRepository(a.redis, cfg.Cache.Namespace)
	a.cache = service.NewCacheService(a.cacheRepo, a.metrics, cfg.Cache.CatalogTTL, logr, cacheEnabled)

	validate := validator.New()
	queryCfg := service.QueryConfig{
		DefaultLimit: cfg.Query.DefaultLimit,
		MaxLimit:     cfg.Query.MaxLimit,
		Location:     cfg.Location(),
	}

	measures := service.NewMeasureResolver(repository.NewMeasureRepository(a.metrics), a.cache, cfg.Cache.CatalogTTL, logr)
	a.sites = service.NewSiteService(a.store, repository.NewSiteRepository(a.metrics), a.cache, cfg.Cache.SitesTTL, validate, logr)
	a.attendanceLogs = service.NewAttendanceLogService(a.store, repository.NewAttendanceLogRepository(a.metrics), validate, queryCfg, logr)
	a.supportReports = service.NewSupportReportService(a.store, repository.NewSupportReportRepository(a.metrics), validate, queryCfg, logr)
	a.lessonPlans = service.NewLessonPlanService(a.store, repository.NewLessonPlanRepository(a.metrics), measures, validate, queryCfg, logr)
	a.assessments = service.NewAssessmentService(a.store, repository.NewAssessmentRepository(a.metrics), validate, queryCfg, logr)
	a.exports = service.NewExportService(logr)

	a.documents = service.NewDocumentService(nil, validate, cfg.Documents.RequestTimeout, logr)
	if cfg.Documents.Enabled {
		client, err := gdocs.New(ctx, cfg.Documents.CredentialsPath, cfg.Documents.TokenPath)
		if err != nil {
			logr.Warn("document tools disabled", zap.Error(err))
		} else {
			a.documents = service.NewDocumentService(client, validate, cfg.Documents.RequestTimeout, logr)
		}
	}

	if cfg.JWT.Enabled {
		a.tokens = service.NewTokenService(service.TokenConfig{
			Secret: cfg.JWT.Secret,
			Issuer: cfg.JWT.Issuer,
			TTL:    cfg.JWT.Expiration,
		})
	}

	return a, nil
}

func (a *app) handlers() handler.Handlers {
	checks := map[string]handler.Pinger{"database": a.store}
	if a.redis != nil {
		checks["cache"] = a.cacheRepo
	}
	return handler.Handlers{
		Query: handler.NewQueryHandler(handler.QueryServices{
			Sites:          a.sites,
			AttendanceLogs: a.attendanceLogs,
			SupportReports: a.supportReports,
			LessonPlans:    a.lessonPlans,
			Assessments:    a.assessments,
			Export:         a.exports,
		}),
		Documents: handler.NewDocumentHandler(a.documents),
		System:    handler.NewSystemHandler(a.metrics, a.cache, checks),
	}
}

func (a *app) routerConfig() handler.RouterConfig {
	cfg := handler.RouterConfig{
		APIPrefix:      a.cfg.APIPrefix,
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
		EnableDocs:     a.cfg.Env != config.EnvProduction,
	}
	if a.tokens != nil {
		cfg.Tokens = a.tokens
	}
	return cfg
}

func (a *app) toolServer() *tools.Server {
	return tools.New(tools.Services{
		Sites:          a.sites,
		AttendanceLogs: a.attendanceLogs,
		SupportReports: a.supportReports,
		LessonPlans:    a.lessonPlans,
		Assessments:    a.assessments,
		Documents:      a.documents,
	}, a.metrics, a.logger, version)
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close redis", zap.Error(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
