package services

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/logger"
	"assistec/internal/models"
	"assistec/internal/storage"
)

// fileNameSanitizer strips characters that are unsafe in storage keys.
var fileNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// galleryService handles gallery uploads and management.
type galleryService struct {
	db       *gorm.DB
	store    storage.Storage
	maxBytes int64
}

// NewGalleryService creates a new GalleryServicer.
func NewGalleryService(db *gorm.DB, store storage.Storage, maxBytes int64) GalleryServicer {
	return &galleryService{db: db, store: store, maxBytes: maxBytes}
}

// ListImages returns gallery images in display order. With visibleOnly,
// hidden images are filtered out for the public site.
func (s *galleryService) ListImages(visibleOnly bool) ([]models.GalleryImage, error) {
	q := s.db.Model(&models.GalleryImage{})
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	var images []models.GalleryImage
	if err := q.Order("display_order ASC, created_at ASC").Find(&images).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return images, nil
}

// UploadImage validates the file, writes it to storage, then records it in
// the database. Only image content types are accepted, capped at the
// configured size; the filename is sanitized and prefixed with a
// millisecond timestamp to avoid collisions.
func (s *galleryService) UploadImage(userID, filename, contentType string, size int64, r io.Reader) (*models.GalleryImage, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidFileType, fmt.Sprintf("%s is not a valid image", filename))
	}
	if size > s.maxBytes {
		return nil, apperrors.WithMessage(apperrors.ErrFileTooLarge, fmt.Sprintf("%s exceeds the size limit", filename))
	}

	sanitized := fileNameSanitizer.ReplaceAllString(filename, "_")
	path := fmt.Sprintf("works/%d-%s", time.Now().UnixMilli(), sanitized)

	url, err := s.store.Save(path, r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, err)
	}

	// New images go to the end of the gallery.
	var count int64
	if err := s.db.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	image := &models.GalleryImage{
		FilePath:     path,
		FileURL:      url,
		DisplayOrder: int(count),
		IsVisible:    true,
		UploadedBy:   userID,
	}
	if err := s.db.Create(image).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return image, nil
}

// UpdateImage applies the non-nil fields of the update.
func (s *galleryService) UpdateImage(id string, update GalleryImageUpdate) (*models.GalleryImage, error) {
	image, err := s.getImageByID(id)
	if err != nil {
		return nil, err
	}

	if update.Caption != nil {
		image.Caption = *update.Caption
	}
	if update.DisplayOrder != nil {
		image.DisplayOrder = *update.DisplayOrder
	}
	if update.IsVisible != nil {
		image.IsVisible = *update.IsVisible
	}
	if err := s.db.Save(image).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return image, nil
}

// DeleteImage removes the database record after attempting to remove the
// stored file. A storage failure is logged but does not block the delete;
// an orphaned file is preferable to a gallery entry with a dead URL.
func (s *galleryService) DeleteImage(id string) error {
	image, err := s.getImageByID(id)
	if err != nil {
		return err
	}

	if err := s.store.Remove(image.FilePath); err != nil {
		logger.Get().Warnw("gallery storage delete failed",
			"path", image.FilePath,
			"error", err.Error(),
		)
	}

	if err := s.db.Delete(image).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

func (s *galleryService) getImageByID(id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.db.Where("id = ?", id).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &image, nil
}
