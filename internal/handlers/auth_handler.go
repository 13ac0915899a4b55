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

type AuthHandler struct {
	store  *store.Store
	logger *logger.Logger
}

func NewAuthHandler(s *store.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		store:  s,
		logger: log,
	}
}

type AdminPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --- admin back-office ---

func (h *AuthHandler) AdminStatus(c *gin.Context) {
	utils.SuccessResponse(c, "Admin status retrieved", gin.H{
		"has_account":   h.store.HasAdminAccount(),
		"authenticated": h.store.IsAdminAuthenticated(),
	})
}

// AdminSetup is the first-run path: one credential per profile, ever.
func (h *AuthHandler) AdminSetup(c *gin.Context) {
	var request AdminPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.store.CreateAdminAccount(request.Password); err != nil {
		if errors.Is(err, store.ErrAdminExists) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		h.logger.WithError(err).Error("failed to create admin account")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Admin account created", nil)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var request AdminPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.store.LoginAdmin(request.Password); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		h.logger.WithError(err).Error("admin login failed")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Admin signed in", nil)
}

func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if err := h.store.LogoutAdmin(); err != nil {
		h.logger.WithError(err).Error("admin logout failed")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Admin signed out", nil)
}

// --- client accounts ---

func (h *AuthHandler) Register(c *gin.Context) {
	var request RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, err := h.store.RegisterUser(request.Name, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		h.logger.WithError(err).Error("registration failed")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Account created", user.Public())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	user, err := h.store.LoginUser(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		h.logger.WithError(err).Error("login failed")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Signed in", user.Public())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.LogoutUser(); err != nil {
		h.logger.WithError(err).Error("logout failed")
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Signed out", nil)
}

// Me returns the session pointer resolved by the UserRequired middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("current_user").(*models.User)
	utils.SuccessResponse(c, "Current user retrieved", user.Public())
}
