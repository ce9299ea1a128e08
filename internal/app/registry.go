package app

import (
	"database/sql"

	"glamist-payroll/internal/messaging/kafka"
	"glamist-payroll/internal/middleware"
	"glamist-payroll/internal/salary"
	"glamist-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	salaryRepo := salary.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	salaryService := salary.NewServiceWithOutbox(db, salaryRepo, counterRepo, outboxRepo)

	// --- Handlers ---
	salaryHandler := salary.NewHandlerWithRedis(salaryService, rdb)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes registration ---
	// Limit per-IP di depan auth; limit per-user yang lebih ketat
	// dipasang per route.
	api := router.Group("/api", middleware.RateLimitByIP(20, 40))
	{
		salary.RegisterRoutes(api, salaryHandler, rdb)
	}

	return nil
}
