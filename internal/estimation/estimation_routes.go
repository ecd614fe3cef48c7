package estimation

import (
	"restropay/internal/middleware"
	"restropay/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/salary-estimation", middleware.Authorize(rbacService, "estimation", "read"), h.Estimate)
		employees.GET("/:id/salary-estimations", middleware.Authorize(rbacService, "estimation", "read"), h.ListAllPeriods)
		employees.GET("/:id/pay-periods", middleware.Authorize(rbacService, "estimation", "read"), h.CalculablePeriods)
	}
}
