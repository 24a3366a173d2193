package models

// Credential stores login details for a third-party service the business
// uses. Access is restricted to owners.
type Credential struct {
	Base
	ServiceName   string `gorm:"not null" json:"service_name"`
	LoginUsername string `gorm:"not null" json:"login_username"`
	Password      string `gorm:"not null" json:"password"`
	URL           string `json:"url,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedBy     string `gorm:"type:uuid" json:"created_by,omitempty"`
}
