package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoluxe/internal/models"
	"autoluxe/internal/store"
	"autoluxe/internal/utils"
	"autoluxe/pkg/logger"
)

type RequestHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewRequestHandler(s *store.Store, log *logger.Logger) *RequestHandler {
	return &RequestHandler{
		store:  s,
		logger: log,
	}
}

type CreateRequestInput struct {
	ContactPhone   string              `json:"contact_phone" binding:"required"`
	CurrentVehicle models.TradeVehicle `json:"current_vehicle" binding:"required"`
	DesiredVehicle string              `json:"desired_vehicle" binding:"required"`
}

type UpdateStatusInput struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests := h.store.ExchangeRequests()
	meta := &utils.Meta{Total: len(requests), Count: len(requests)}
	utils.SuccessResponseWithMeta(c, "Exchange requests retrieved", gin.H{"requests": requests}, meta)
}

// CreateRequest files a trade-in on behalf of the signed-in user; ownership
// fields come from the session, not the form.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user := c.MustGet("current_user").(*models.User)
	request := models.ExchangeRequest{
		UserID:         user.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		ContactPhone:   input.ContactPhone,
		CurrentVehicle: input.CurrentVehicle,
		DesiredVehicle: input.DesiredVehicle,
	}

	created, err := h.store.CreateExchangeRequest(request)
	if err != nil {
		h.logger.WithError(err).Error("failed to create exchange request")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Exchange request submitted", created)
}

func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	err := h.store.UpdateRequestStatus(c.Param("id"), input.Status)
	switch {
	case err == nil:
		utils.SuccessResponse(c, "Request status updated", nil)
	case errors.Is(err, store.ErrRequestNotFound):
		utils.NotFoundResponse(c, "Exchange request")
	case errors.Is(err, store.ErrRequestFinalized):
		utils.ConflictResponse(c, err.Error())
	default:
		h.logger.WithError(err).Error("failed to update request status")
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
	}
}
