package app

import (
	"database/sql"

	"restropay/internal/absence"
	"restropay/internal/currency"
	"restropay/internal/employee"
	"restropay/internal/estimation"
	"restropay/internal/messaging/kafka"
	"restropay/internal/middleware"
	"restropay/internal/payment"
	"restropay/internal/rbac"
	"restropay/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	absenceRepo := absence.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	absenceService := absence.NewServiceWithOutbox(db, absenceRepo, outboxRepo)
	paymentService := payment.NewServiceWithOutbox(db, paymentRepo, counterRepo, outboxRepo)
	estimationService := estimation.NewServiceWithCache(
		employeeRepo,
		absenceRepo,
		paymentRepo,
		currency.NewRupeeFormatter(),
		rdb,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	absenceHandler := absence.NewHandler(absenceService)
	paymentHandler := payment.NewHandlerWithRedis(paymentService, rdb)
	estimationHandler := estimation.NewHandler(estimationService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		absence.RegisterRoutes(api, absenceHandler, rbacService)
		payment.RegisterRoutes(api, paymentHandler, rbacService, rdb)
		estimation.RegisterRoutes(api, estimationHandler, rbacService)
	}

	return nil
}
