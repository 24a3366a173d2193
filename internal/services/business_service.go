package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
)

// businessService manages the single-row business profile.
type businessService struct {
	db *gorm.DB
}

// NewBusinessService creates a new BusinessServicer.
func NewBusinessService(db *gorm.DB) BusinessServicer {
	return &businessService{db: db}
}

// GetInfo returns the business profile, or nil when none has been created
// yet. A missing profile is not an error; the admin panel shows an empty
// form in that case.
func (s *businessService) GetInfo() (*models.BusinessInfo, error) {
	var info models.BusinessInfo
	if err := s.db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return &info, nil
}

// UpdateInfo writes the profile, creating the row on first save.
func (s *businessService) UpdateInfo(userID string, update BusinessInfoUpdate) (*models.BusinessInfo, error) {
	if strings.TrimSpace(update.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "business name is required")
	}

	info, err := s.GetInfo()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.BusinessInfo{}
	}

	info.Name = strings.TrimSpace(update.Name)
	info.Phone = strings.TrimSpace(update.Phone)
	info.Whatsapp = strings.TrimSpace(update.Whatsapp)
	info.Email = strings.TrimSpace(update.Email)
	info.Address = strings.TrimSpace(update.Address)
	info.AboutText = strings.TrimSpace(update.AboutText)
	info.WorkingHours = strings.TrimSpace(update.WorkingHours)
	info.UpdatedBy = userID

	if err := s.db.Save(info).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return info, nil
}
