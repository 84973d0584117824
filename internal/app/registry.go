package app

import (
	"database/sql"
	"net/http"

	"go-attend/internal/attendance"
	"go-attend/internal/checkin"
	"go-attend/internal/config"
	"go-attend/internal/meeting"
	"go-attend/internal/middleware"
	"go-attend/internal/messaging/kafka"
	"go-attend/internal/rbac"
	"go-attend/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	checkinMetrics := attendance.NewMetrics(reg)

	// --- Repositories ---
	meetingRepo := meeting.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	validator := checkin.NewValidator(checkin.NewTimingPolicy(cfg.DisplayLocation))
	meetingService := meeting.NewService(meetingRepo, rdb, cfg.MeetingCacheTTL, logger)
	attendanceService := attendance.NewService(
		db,
		attendanceRepo,
		meetingService,
		validator,
		outboxRepo,
		rdb,
		attendance.Options{
			LockTTL: cfg.CheckinLockTTL,
			Metrics: checkinMetrics,
		},
		logger,
	)

	// --- Handlers ---
	meetingHandler := meeting.NewHandler(meetingService)
	attendanceHandler := attendance.NewHandler(attendanceService)

	// --- Routes Registration ---
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.NoRoute(middleware.NotFound)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		meeting.RegisterRoutes(api, meetingHandler, rbacService, cfg.JWTSecret)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, cfg.JWTSecret, rdb)
	}

	return nil
}
