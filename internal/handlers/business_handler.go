package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistec/internal/cache"
	apperrors "assistec/internal/errors"
	"assistec/internal/services"
)

// BusinessHandler handles business profile requests.
type BusinessHandler struct {
	businessService services.BusinessServicer
	cache           *cache.Cache
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService services.BusinessServicer, cache *cache.Cache) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, cache: cache}
}

// UpdateBusinessInfoRequest represents the editable business profile fields.
type UpdateBusinessInfoRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Phone        string `json:"phone" binding:"max=30"`
	Whatsapp     string `json:"whatsapp" binding:"max=30"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address" binding:"max=500"`
	AboutText    string `json:"about_text" binding:"max=2000"`
	WorkingHours string `json:"working_hours" binding:"max=200"`
}

// GetInfo returns the business profile for editing
// @Summary     Get business info
// @Description Get the business profile, or null if none has been saved yet
// @Tags        business
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.BusinessInfo "Business profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /business [get]
func (h *BusinessHandler) GetInfo(c *gin.Context) {
	info, err := h.businessService.GetInfo()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": info})
}

// UpdateInfo saves the business profile
// @Summary     Update business info
// @Description Create or replace the business profile shown on the public site
// @Tags        business
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateBusinessInfoRequest true "Business profile"
// @Success     200 {object} models.BusinessInfo "Saved profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /business [put]
func (h *BusinessHandler) UpdateInfo(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBusinessInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	info, err := h.businessService.UpdateInfo(userID, services.BusinessInfoUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Email:        req.Email,
		Address:      req.Address,
		AboutText:    req.AboutText,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyBusinessInfo)
	c.JSON(http.StatusOK, gin.H{"business": info})
}
