package vacation

import (
	"github.com/EddieMjiyakho/Vacation-API/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	employees := r.Group("/employees")
	{
		employees.POST("/:id/requests", middleware.Idempotency(rdb), handler.Create)
		employees.GET("/:id/requests", handler.GetByEmployee)
		employees.GET("/:id/remaining-days", handler.RemainingDays)
	}

	requests := r.Group("/requests")
	{
		requests.GET("", handler.GetAll)
		requests.GET("/overlapping", handler.FindOverlapping)
		requests.GET("/:id", handler.GetByID)
		requests.PATCH("/:id/status", handler.UpdateStatus)
	}

	r.GET("/managers/:id/pending-requests", handler.GetPendingForManager)
}
