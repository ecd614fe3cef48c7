package employee

import (
	"restropay/internal/middleware"
	"restropay/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/:id", middleware.Authorize(rbacService, "employee", "read"), h.GetById)
		employees.POST("", middleware.Authorize(rbacService, "employee", "create"), h.Create)
		employees.PUT("/:id", middleware.Authorize(rbacService, "employee", "update"), h.Update)
		employees.DELETE("/:id", middleware.Authorize(rbacService, "employee", "delete"), h.Delete)
	}
}
