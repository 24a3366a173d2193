package models

import "time"

// AdminRole represents an admin panel access level
type AdminRole string

const (
	AdminRoleOwner      AdminRole = "owner"
	AdminRoleConsultant AdminRole = "consultant"
)

// User represents an admin panel user
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	Roles            []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
}

// UserRole grants a user access to the admin panel with a given role
type UserRole struct {
	Base
	UserID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Role   AdminRole `gorm:"not null" json:"role"`
}
