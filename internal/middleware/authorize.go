package middleware

import (
	"restropay/internal/rbac"
	"restropay/internal/shared/apperror"
	"restropay/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize checks the caller's role (set by AuthMiddleware) against the
// static policy table for the given resource and action.
func Authorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, "Role not found in auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, resource+":"+action)
			c.Abort()
			return
		}

		c.Next()
	}
}
