package attendance

import (
	"go-attend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts check-in routes under /meetings/:id. Guests may
// check in, and retried submissions carrying an Idempotency-Key replay the
// first response. Listing and undo require an organizer.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, jwtSecret string, rdb *redis.Client) {
	checkins := r.Group("/meetings/:id/checkins")
	{
		checkins.POST("", middleware.OptionalAuth(jwtSecret), middleware.Idempotency(rdb, 0), h.CheckIn)
		checkins.GET("",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetAll,
		)
		checkins.DELETE("/:attendanceId",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RBACAuthorize(rbacService, "attendance", "undo"),
			h.Undo,
		)
	}
}
