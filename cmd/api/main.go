package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/luachhq/luach-api/api/swagger"
	"github.com/luachhq/luach-api/internal/handler"
	"github.com/luachhq/luach-api/internal/hebcal"
	"github.com/luachhq/luach-api/internal/middleware"
	"github.com/luachhq/luach-api/internal/service"
	"github.com/luachhq/luach-api/pkg/cache"
	"github.com/luachhq/luach-api/pkg/config"
	"github.com/luachhq/luach-api/pkg/logger"
	corsmiddleware "github.com/luachhq/luach-api/pkg/middleware/cors"
	reqidmiddleware "github.com/luachhq/luach-api/pkg/middleware/requestid"
)

// @title Luach API
// @version 1.0.0
// @description Jewish and US holiday catalog with bilingual search and calendar exports
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewRepository(client)
		}
	}

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Catalog.CacheTTL, logr)
	catalogSvc := service.NewCatalogService(hebcal.NewStaticSource(), cacheSvc, metrics, logr, cfg.Catalog.WindowYears)
	searchSvc := service.NewSearchService(catalogSvc, metrics, logr)
	exportSvc := service.NewExportService(catalogSvc, validator.New(), logr)

	catalogSvc.Rebuild(context.Background())

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Catalog.RefreshSpec, func() {
		catalogSvc.Rebuild(context.Background())
	}); err != nil {
		logr.Warn("invalid refresh spec, nightly rebuild disabled",
			zap.String("spec", cfg.Catalog.RefreshSpec), zap.Error(err))
	} else {
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.RegisterRoutes(api,
		handler.NewHolidayHandler(catalogSvc, searchSvc, cfg.Catalog.UpcomingLimit),
		handler.NewExportHandler(exportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
