package meeting

import (
	"go-attend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, jwtSecret string) {
	meetings := r.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware(jwtSecret))
	{
		meetings.GET("", middleware.RBACAuthorize(rbacService, "meeting", "read"), h.GetAll)
		meetings.POST("", middleware.RBACAuthorize(rbacService, "meeting", "create"), h.Create)
		meetings.GET("/:id", middleware.RBACAuthorize(rbacService, "meeting", "read"), h.GetByID)
		meetings.PUT("/:id/settings", middleware.RBACAuthorize(rbacService, "meeting", "update"), h.UpdateSettings)
	}
}
