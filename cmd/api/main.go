package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Chajse/EduSumm/api/swagger"
	"github.com/Chajse/EduSumm/internal/handler"
	internalmiddleware "github.com/Chajse/EduSumm/internal/middleware"
	"github.com/Chajse/EduSumm/internal/repository"
	"github.com/Chajse/EduSumm/internal/service"
	"github.com/Chajse/EduSumm/pkg/cache"
	"github.com/Chajse/EduSumm/pkg/config"
	"github.com/Chajse/EduSumm/pkg/database"
	"github.com/Chajse/EduSumm/pkg/export"
	"github.com/Chajse/EduSumm/pkg/logger"
	corsmiddleware "github.com/Chajse/EduSumm/pkg/middleware/cors"
	reqidmiddleware "github.com/Chajse/EduSumm/pkg/middleware/requestid"
	"github.com/Chajse/EduSumm/pkg/summarizer"
)

const shutdownTimeout = 10 * time.Second

// @title EduSumm API
// @version 1.0.0
// @description School records with dashboard aggregation and text summarization
// @BasePath /
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

	if err := run(cfg, logr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(context.Background(), db, logr); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			redisClient = nil
		}
	}
	cacheEnabled := redisClient != nil

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cacheEnabled)

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Grades:  gradeRepo,
		Cache:   cacheSvc,
		Metrics: metricsSvc,
		Logger:  logr,
		Config:  service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})

	textSummarizer, err := summarizer.New(cfg.Summary, logr)
	if err != nil {
		return fmt.Errorf("configure summarizer: %w", err)
	}

	checks := map[string]handler.ReadinessCheck{"database": db.PingContext}
	if cacheEnabled {
		checks["redis"] = cacheRepo.Ping
	}

	handlers := handler.Handlers{
		Students: handler.NewStudentHandler(service.NewStudentService(studentRepo, cacheSvc, validate, logr)),
		Subjects: handler.NewSubjectHandler(service.NewSubjectService(subjectRepo, cacheSvc, validate, logr)),
		Grades: handler.NewGradeHandler(
			service.NewGradeService(gradeRepo, cacheSvc, validate, logr),
			service.NewExportService(gradeRepo, logr, export.NewCSVExporter(), export.NewPDFExporter()),
		),
		Enrollments: handler.NewEnrollmentHandler(service.NewEnrollmentService(enrollmentRepo, validate, logr)),
		Users:       handler.NewUserHandler(service.NewUserService(userRepo, validate, logr)),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Summary:     handler.NewSummaryHandler(service.NewSummaryService(textSummarizer, dashboardSvc, metricsSvc, logr)),
		Metrics:     handler.NewMetricsHandler(metricsSvc, checks),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, handlers, cfg.Metrics.Enabled)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "summary_provider", cfg.Summary.Provider, "dashboard_cache", cacheEnabled)
		serverErrors <- srv.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-signals:
		logr.Sugar().Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
