package routes

import (
	"github.com/gin-gonic/gin"

	"autoluxe/internal/handlers"
	"autoluxe/internal/middleware"
	"autoluxe/internal/store"
)

// SetupAuthRoutes sets up the admin back-office and client account routes.
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, s *store.Store) {
	admin := r.Group("/auth/admin")
	{
		admin.GET("/status", authHandler.AdminStatus)
		admin.POST("/setup", authHandler.AdminSetup)
		admin.POST("/login", authHandler.AdminLogin)
		admin.POST("/logout", authHandler.AdminLogout)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.UserRequired(s), authHandler.Me)
	}
}
