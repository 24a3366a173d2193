package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistec/internal/cache"
	apperrors "assistec/internal/errors"
	"assistec/internal/models"
	"assistec/internal/services"
)

// AdvisoryHandler handles advisory result metric requests.
type AdvisoryHandler struct {
	advisoryService services.AdvisoryServicer
	cache           *cache.Cache
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(advisoryService services.AdvisoryServicer, cache *cache.Cache) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService, cache: cache}
}

// AdvisoryResultRequest is one row of a bulk save. An empty ID inserts a
// new card; rows with a blank title are skipped.
type AdvisoryResultRequest struct {
	ID           string            `json:"id"`
	Title        string            `json:"title" binding:"max=200"`
	Description  string            `json:"description" binding:"max=1000"`
	Value        string            `json:"value" binding:"max=100"`
	MetricType   models.MetricType `json:"metric_type" binding:"omitempty,metric_type"`
	Period       string            `json:"period" binding:"max=100"`
	DisplayOrder int               `json:"display_order"`
	IsVisible    bool              `json:"is_visible"`
}

// SaveResultsRequest carries the full batch of result cards.
type SaveResultsRequest struct {
	Results []AdvisoryResultRequest `json:"results" binding:"required"`
}

// ListResults returns all advisory results for the admin panel
// @Summary     List advisory results
// @Description Get every advisory result card, including hidden ones, in display order
// @Tags        results
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.AdvisoryResult "Advisory results"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /results [get]
func (h *AdvisoryHandler) ListResults(c *gin.Context) {
	results, err := h.advisoryService.ListResults(false)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// SaveResults upserts the full batch of result cards
// @Summary     Save advisory results
// @Description Insert or update advisory result cards in one transaction and return the fresh list
// @Tags        results
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveResultsRequest true "Result cards"
// @Success     200 {array} models.AdvisoryResult "Saved results"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Result not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /results [put]
func (h *AdvisoryHandler) SaveResults(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.AdvisoryResultInput, 0, len(req.Results))
	for _, r := range req.Results {
		inputs = append(inputs, services.AdvisoryResultInput{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Value:        r.Value,
			MetricType:   r.MetricType,
			Period:       r.Period,
			DisplayOrder: r.DisplayOrder,
			IsVisible:    r.IsVisible,
		})
	}

	results, err := h.advisoryService.SaveResults(userID, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyResults)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// DeleteResult handles the deletion of a result card
// @Summary     Delete advisory result
// @Description Delete one advisory result card by ID
// @Tags        results
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Result ID"
// @Success     200 {object} MessageResponse "Result deleted"
// @Failure     400 {object} ErrorResponse "Invalid result ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Result not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /results/{id} [delete]
func (h *AdvisoryHandler) DeleteResult(c *gin.Context) {
	resultID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.advisoryService.DeleteResult(resultID); err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyResults)
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted successfully"})
}
