package routes

import (
	"github.com/gin-gonic/gin"

	"autoluxe/internal/handlers"
	"autoluxe/internal/middleware"
	"autoluxe/internal/store"
)

// SetupRequestRoutes sets up the trade-in exchange routes: clients file
// requests, admins list and resolve them.
func SetupRequestRoutes(r *gin.RouterGroup, requestHandler *handlers.RequestHandler, s *store.Store) {
	requests := r.Group("/requests")
	{
		requests.POST("", middleware.UserRequired(s), requestHandler.CreateRequest)
		requests.GET("", middleware.AdminRequired(s), requestHandler.ListRequests)
		requests.PUT("/:id/status", middleware.AdminRequired(s), requestHandler.UpdateRequestStatus)
	}
}
