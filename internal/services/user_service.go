package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/logger"
	"assistec/internal/models"
)

// userService handles admin user and role management.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUserWithRole creates a user and grants the role in one transaction,
// so a failed role insert never leaves a roleless account behind.
func (s *userService) CreateUserWithRole(email, password string, role models.AdminRole) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	if len(password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}
	if role != models.AdminRoleOwner && role != models.AdminRoleConsultant {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "role must be owner or consultant")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		userRole := &models.UserRole{UserID: user.ID, Role: role}
		if err := tx.Create(userRole).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.Roles = []models.UserRole{*userRole}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AttemptLogin verifies the credentials and records the login time. The
// same error is returned for an unknown email and a wrong password.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		logger.Get().Warnw("failed to record login time", "user_id", user.ID, "error", err.Error())
	}
	return &user, nil
}

// GetUserByID retrieves a user with their roles preloaded.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// RoleFor returns the user's admin role. A user without a role row has no
// admin access at all.
func (s *userService) RoleFor(userID string) (models.AdminRole, error) {
	var userRole models.UserRole
	if err := s.db.Where("user_id = ?", userID).First(&userRole).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrRoleNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return userRole.Role, nil
}

// ListRoles returns every role grant, newest first.
func (s *userService) ListRoles() ([]models.UserRole, error) {
	var roles []models.UserRole
	if err := s.db.Order("created_at DESC").Find(&roles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return roles, nil
}

// RevokeRole removes a role grant, locking that user out of the panel.
func (s *userService) RevokeRole(roleID string) error {
	var userRole models.UserRole
	if err := s.db.Where("id = ?", roleID).First(&userRole).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&userRole).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

// StoreRefreshTokenHash persists the hash of the user's current refresh
// token, invalidating any previously issued one.
func (s *userService) StoreRefreshTokenHash(userID, tokenHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash for comparison
// during token rotation.
func (s *userService) GetRefreshTokenHash(userID string) (string, error) {
	var user models.User
	if err := s.db.Select("refresh_token_hash").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.RefreshTokenHash, nil
}

// EnsureOwner bootstraps the first owner account when the users table is
// empty. Does nothing once any user exists.
func (s *userService) EnsureOwner(email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	user, err := s.CreateUserWithRole(email, password, models.AdminRoleOwner)
	if err != nil {
		return err
	}
	logger.Get().Infow("bootstrapped owner account", "user_id", user.ID, "email", user.Email)
	return nil
}
