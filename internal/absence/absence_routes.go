package absence

import (
	"restropay/internal/middleware"
	"restropay/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	absences := r.Group("/absences")
	absences.Use(middleware.AuthMiddleware())
	{
		absences.POST("", middleware.Authorize(rbacService, "absence", "create"), h.Create)
		absences.GET("/:id", middleware.Authorize(rbacService, "absence", "read"), h.GetById)
		absences.PUT("/:id", middleware.Authorize(rbacService, "absence", "update"), h.Update)
		absences.DELETE("/:id", middleware.Authorize(rbacService, "absence", "delete"), h.Delete)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/absences", middleware.Authorize(rbacService, "absence", "read"), h.GetAllByEmployee)
	}
}
