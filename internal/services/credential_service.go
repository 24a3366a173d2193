package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
)

// credentialService manages stored third-party service credentials.
type credentialService struct {
	db *gorm.DB
}

// NewCredentialService creates a new CredentialServicer.
func NewCredentialService(db *gorm.DB) CredentialServicer {
	return &credentialService{db: db}
}

// ListCredentials returns all credentials ordered by service name.
func (s *credentialService) ListCredentials() ([]models.Credential, error) {
	var credentials []models.Credential
	if err := s.db.Order("service_name ASC").Find(&credentials).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return credentials, nil
}

// CreateCredential stores a new credential. Service name, username and
// password are required.
func (s *credentialService) CreateCredential(userID, serviceName, loginUsername, password, url, notes string) (*models.Credential, error) {
	serviceName = strings.TrimSpace(serviceName)
	loginUsername = strings.TrimSpace(loginUsername)
	if serviceName == "" || loginUsername == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "service name, username and password are required")
	}

	credential := &models.Credential{
		ServiceName:   serviceName,
		LoginUsername: loginUsername,
		Password:      password,
		URL:           strings.TrimSpace(url),
		Notes:         notes,
		CreatedBy:     userID,
	}
	if err := s.db.Create(credential).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return credential, nil
}

// UpdateCredential replaces the stored fields of an existing credential.
func (s *credentialService) UpdateCredential(id, serviceName, loginUsername, password, url, notes string) (*models.Credential, error) {
	serviceName = strings.TrimSpace(serviceName)
	loginUsername = strings.TrimSpace(loginUsername)
	if serviceName == "" || loginUsername == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "service name, username and password are required")
	}

	credential, err := s.getCredentialByID(id)
	if err != nil {
		return nil, err
	}

	credential.ServiceName = serviceName
	credential.LoginUsername = loginUsername
	credential.Password = password
	credential.URL = strings.TrimSpace(url)
	credential.Notes = notes
	if err := s.db.Save(credential).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return credential, nil
}

// DeleteCredential removes a credential permanently.
func (s *credentialService) DeleteCredential(id string) error {
	credential, err := s.getCredentialByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(credential).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

func (s *credentialService) getCredentialByID(id string) (*models.Credential, error) {
	var credential models.Credential
	if err := s.db.Where("id = ?", id).First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &credential, nil
}
