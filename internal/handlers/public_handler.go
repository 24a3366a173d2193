package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"assistec/internal/cache"
	"assistec/internal/services"
)

// PublicHandler serves the unauthenticated landing page content through a
// read-through cache. Admin mutations invalidate the affected key, so the
// cache only ever trims database reads, never correctness.
type PublicHandler struct {
	businessService services.BusinessServicer
	galleryService  services.GalleryServicer
	advisoryService services.AdvisoryServicer
	cache           *cache.Cache
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(
	businessService services.BusinessServicer,
	galleryService services.GalleryServicer,
	advisoryService services.AdvisoryServicer,
	cache *cache.Cache,
) *PublicHandler {
	return &PublicHandler{
		businessService: businessService,
		galleryService:  galleryService,
		advisoryService: advisoryService,
		cache:           cache,
	}
}

// serveCached writes a cached payload if present, otherwise loads the value,
// caches its JSON encoding, and writes it.
func (h *PublicHandler) serveCached(c *gin.Context, key string, load func() (interface{}, error)) {
	if payload, ok := h.cache.Get(key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	value, err := load()
	if err != nil {
		respondWithError(c, err)
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Set(key, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetBusinessInfo returns the public business profile
// @Summary     Get public business info
// @Description Get the business contact details shown on the landing page
// @Tags        public
// @Accept      json
// @Produce     json
// @Success     200 {object} models.BusinessInfo "Business profile"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /public/business [get]
func (h *PublicHandler) GetBusinessInfo(c *gin.Context) {
	h.serveCached(c, cache.KeyBusinessInfo, func() (interface{}, error) {
		info, err := h.businessService.GetInfo()
		if err != nil {
			return nil, err
		}
		return gin.H{"business": info}, nil
	})
}

// GetGallery returns the visible gallery images
// @Summary     Get public gallery
// @Description Get the visible gallery images in display order
// @Tags        public
// @Accept      json
// @Produce     json
// @Success     200 {array} models.GalleryImage "Gallery images"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /public/gallery [get]
func (h *PublicHandler) GetGallery(c *gin.Context) {
	h.serveCached(c, cache.KeyGallery, func() (interface{}, error) {
		images, err := h.galleryService.ListImages(true)
		if err != nil {
			return nil, err
		}
		return gin.H{"images": images}, nil
	})
}

// GetResults returns the visible advisory results
// @Summary     Get public advisory results
// @Description Get the visible advisory result cards in display order
// @Tags        public
// @Accept      json
// @Produce     json
// @Success     200 {array} models.AdvisoryResult "Advisory results"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /public/results [get]
func (h *PublicHandler) GetResults(c *gin.Context) {
	h.serveCached(c, cache.KeyResults, func() (interface{}, error) {
		results, err := h.advisoryService.ListResults(true)
		if err != nil {
			return nil, err
		}
		return gin.H{"results": results}, nil
	})
}
