package payment

import (
	"restropay/internal/middleware"
	"restropay/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		create := []gin.HandlerFunc{middleware.Authorize(rbacService, "payment", "create")}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		payments.POST("", append(create, h.Create)...)

		payments.GET("/:id", middleware.Authorize(rbacService, "payment", "read"), h.GetById)
		payments.PUT("/:id", middleware.Authorize(rbacService, "payment", "update"), h.Update)
		payments.DELETE("/:id", middleware.Authorize(rbacService, "payment", "delete"), h.Delete)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/payments", middleware.Authorize(rbacService, "payment", "read"), h.GetHistoryByEmployee)
	}
}
