package routes

import (
	"github.com/gin-gonic/gin"

	"autoluxe/internal/handlers"
	"autoluxe/internal/middleware"
	"autoluxe/internal/store"
)

// SetupVehicleRoutes sets up the catalog and inventory routes. Reads are
// public; mutations require the admin session.
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, s *store.Store) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	admin := r.Group("/vehicles")
	admin.Use(middleware.AdminRequired(s))
	{
		admin.POST("", vehicleHandler.SaveVehicle)
		admin.PUT("/:id", vehicleHandler.UpdateVehicle)
		admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
