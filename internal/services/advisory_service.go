package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
)

// advisoryService manages the customer-facing advisory result metrics.
type advisoryService struct {
	db *gorm.DB
}

// NewAdvisoryService creates a new AdvisoryServicer.
func NewAdvisoryService(db *gorm.DB) AdvisoryServicer {
	return &advisoryService{db: db}
}

// ListResults returns advisory results in display order. With visibleOnly,
// hidden cards are filtered out for the public site.
func (s *advisoryService) ListResults(visibleOnly bool) ([]models.AdvisoryResult, error) {
	q := s.db.Model(&models.AdvisoryResult{})
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	var results []models.AdvisoryResult
	if err := q.Order("display_order ASC, created_at ASC").Find(&results).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return results, nil
}

// SaveResults upserts a batch of result cards in one transaction. Rows
// without a title are skipped rather than rejected, matching the admin
// panel's draft-rows-in-place editing. Returns the fresh full list.
func (s *advisoryService) SaveResults(userID string, inputs []AdvisoryResultInput) ([]models.AdvisoryResult, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			title := strings.TrimSpace(in.Title)
			if title == "" {
				continue
			}

			metricType := in.MetricType
			if metricType == "" {
				metricType = models.MetricTypeText
			}

			if in.ID == "" {
				result := &models.AdvisoryResult{
					Title:        title,
					Description:  in.Description,
					Value:        in.Value,
					MetricType:   metricType,
					Period:       in.Period,
					DisplayOrder: in.DisplayOrder,
					IsVisible:    in.IsVisible,
					CreatedBy:    userID,
				}
				if err := tx.Create(result).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrSubmitFailed, err)
				}
				continue
			}

			var result models.AdvisoryResult
			if err := tx.Where("id = ?", in.ID).First(&result).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrResultNotFound
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result.Title = title
			result.Description = in.Description
			result.Value = in.Value
			result.MetricType = metricType
			result.Period = in.Period
			result.DisplayOrder = in.DisplayOrder
			result.IsVisible = in.IsVisible
			if err := tx.Save(&result).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrSubmitFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.ListResults(false)
}

// DeleteResult removes one result card.
func (s *advisoryService) DeleteResult(id string) error {
	var result models.AdvisoryResult
	if err := s.db.Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResultNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&result).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}
