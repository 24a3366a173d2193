package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistec/internal/cache"
	apperrors "assistec/internal/errors"
	"assistec/internal/services"
)

// GalleryHandler handles gallery management requests.
type GalleryHandler struct {
	galleryService services.GalleryServicer
	cache          *cache.Cache
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryService services.GalleryServicer, cache *cache.Cache) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, cache: cache}
}

// UpdateImageRequest represents the request payload for updating an image.
// Omitted fields are left unchanged.
type UpdateImageRequest struct {
	Caption      *string `json:"caption"`
	DisplayOrder *int    `json:"display_order"`
	IsVisible    *bool   `json:"is_visible"`
}

// ListImages returns all gallery images for the admin panel
// @Summary     List gallery images
// @Description Get every gallery image, including hidden ones, in display order
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.GalleryImage "Gallery images"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gallery [get]
func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.galleryService.ListImages(false)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// UploadImage handles a multipart image upload
// @Summary     Upload gallery image
// @Description Upload an image file to the gallery. Only image content types are accepted, up to the configured size limit.
// @Tags        gallery
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Image file"
// @Success     201 {object} models.GalleryImage "Uploaded image"
// @Failure     400 {object} ErrorResponse "Not an image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "File too large"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gallery [post]
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUploadFailed, err))
		return
	}
	defer file.Close()

	image, err := h.galleryService.UploadImage(
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyGallery)
	c.JSON(http.StatusCreated, gin.H{"image": image})
}

// UpdateImage handles editing an image's caption, order, or visibility
// @Summary     Update gallery image
// @Description Update the caption, display order, or visibility of an image
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Image ID"
// @Param       request body UpdateImageRequest true "Fields to update"
// @Success     200 {object} models.GalleryImage "Updated image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Image not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gallery/{id} [put]
func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	imageID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	image, err := h.galleryService.UpdateImage(imageID, services.GalleryImageUpdate{
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
		IsVisible:    req.IsVisible,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyGallery)
	c.JSON(http.StatusOK, gin.H{"image": image})
}

// DeleteImage handles the deletion of a gallery image
// @Summary     Delete gallery image
// @Description Delete an image record and its stored file
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Image ID"
// @Success     200 {object} MessageResponse "Image deleted"
// @Failure     400 {object} ErrorResponse "Invalid image ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Image not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gallery/{id} [delete]
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	imageID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.galleryService.DeleteImage(imageID); err != nil {
		respondWithError(c, err)
		return
	}

	h.cache.Invalidate(cache.KeyGallery)
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
