package models

// BusinessInfo is the single-row business profile shown on the landing page
type BusinessInfo struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Phone        string `json:"phone,omitempty"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	AboutText    string `json:"about_text,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
	UpdatedBy    string `gorm:"type:uuid" json:"updated_by,omitempty"`
}
