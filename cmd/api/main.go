package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edupanel/edu-admin-api/api/swagger"
	"github.com/edupanel/edu-admin-api/internal/handler"
	"github.com/edupanel/edu-admin-api/internal/middleware"
	"github.com/edupanel/edu-admin-api/internal/repository"
	"github.com/edupanel/edu-admin-api/internal/service"
	"github.com/edupanel/edu-admin-api/pkg/cache"
	"github.com/edupanel/edu-admin-api/pkg/config"
	"github.com/edupanel/edu-admin-api/pkg/database"
	"github.com/edupanel/edu-admin-api/pkg/logger"
	corsmiddleware "github.com/edupanel/edu-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edupanel/edu-admin-api/pkg/middleware/requestid"
)

// @title Edu Admin API
// @version 0.1.0
// @description Course and student administration API with single-admin JWT auth
// @BasePath /api
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		cacheRepo = repository.NewRedisCacheRepository(redisClient)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	validate := validator.New()

	adminRepo := repository.NewAdminRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	authSvc := service.NewAuthService(adminRepo, validate, logr, service.AuthConfig{
		Secret:      cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, logr)
	studentSvc := service.NewStudentService(studentRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(studentRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.GET("/check", authHandler.Check)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	courses := protected.Group("/courses")
	courses.POST("", courseHandler.Create)
	courses.GET("", courseHandler.List)
	courses.DELETE("/:id", courseHandler.Delete)

	students := protected.Group("/students")
	students.POST("", studentHandler.Create)
	students.GET("", studentHandler.List)
	students.GET("/export", studentHandler.Export)
	students.DELETE("/:id", studentHandler.Delete)
	students.POST("/assign", studentHandler.AssignCourse)
	students.POST("/:id/assign", studentHandler.AssignCourse)
	students.POST("/marks", studentHandler.UpsertMark)
	students.DELETE("/marks", studentHandler.DeleteMark)

	if cfg.Static.Dir != "" {
		r.Static("/app", cfg.Static.Dir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/app/")
		})
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
