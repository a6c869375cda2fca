package app

import (
	"database/sql"
	"time"

	"github.com/EddieMjiyakho/Vacation-API/internal/employee"
	"github.com/EddieMjiyakho/Vacation-API/internal/messaging/kafka"
	"github.com/EddieMjiyakho/Vacation-API/internal/middleware"
	"github.com/EddieMjiyakho/Vacation-API/internal/vacation"

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
	vacationRepo := vacation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, rdb)
	vacationService := vacation.NewServiceWithOutbox(db, vacationRepo, employeeRepo, outboxRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	vacationHandler := vacation.NewHandlerWithRedis(vacationService, rdb)

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Every(time.Second/20), 40))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		vacation.RegisterRoutes(api, vacationHandler, rdb)
	}

	return nil
}
