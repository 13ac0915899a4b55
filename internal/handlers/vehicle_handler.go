package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"autoluxe/internal/catalog"
	"autoluxe/internal/models"
	"autoluxe/internal/store"
	"autoluxe/internal/utils"
	"autoluxe/pkg/logger"
)

type VehicleHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewVehicleHandler(s *store.Store, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		store:  s,
		logger: log,
	}
}

// ListVehicles runs the catalog query over the full inventory. The limit
// query param is the client's reveal count; Meta carries the filtered total
// so an empty result renders differently from an empty table.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filters catalog.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.BadRequestResponse(c, "Invalid filters: "+err.Error())
		return
	}
	sortBy := catalog.ParseSortOption(c.Query("sort"))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.RevealStep)))
	limit = catalog.ClampLimit(limit)

	filtered := catalog.Query(h.store.Vehicles(), filters, sortBy)
	visible := filtered
	if limit < len(filtered) {
		visible = filtered[:limit]
	}

	meta := &utils.Meta{
		Total:   len(filtered),
		Count:   len(visible),
		HasMore: limit < len(filtered),
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", gin.H{"vehicles": visible}, meta)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, found := h.store.Vehicle(c.Param("id"))
	if !found {
		utils.NotFoundResponse(c, "Vehicle")
		return
	}
	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// SaveVehicle creates or upserts a record from the admin form.
func (h *VehicleHandler) SaveVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle: "+err.Error())
		return
	}

	saved, err := h.store.SaveVehicle(vehicle)
	if err != nil {
		h.logger.WithError(err).Error("failed to save vehicle")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Vehicle saved successfully", saved)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle: "+err.Error())
		return
	}
	vehicle.ID = c.Param("id")

	saved, err := h.store.SaveVehicle(vehicle)
	if err != nil {
		h.logger.WithError(err).Error("failed to update vehicle")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Vehicle updated successfully", saved)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.store.DeleteVehicle(c.Param("id")); err != nil {
		h.logger.WithError(err).Error("failed to delete vehicle")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}
