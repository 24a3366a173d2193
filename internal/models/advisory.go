package models

// MetricType describes how an advisory result value should be rendered
type MetricType string

const (
	MetricTypeText       MetricType = "text"
	MetricTypePercentage MetricType = "percentage"
	MetricTypeCurrency   MetricType = "currency"
	MetricTypeNumber     MetricType = "number"
)

// AdvisoryResult is a customer-facing metric card managed from the admin panel
type AdvisoryResult struct {
	Base
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description,omitempty"`
	Value        string     `json:"value,omitempty"`
	MetricType   MetricType `gorm:"default:text" json:"metric_type"`
	Period       string     `json:"period,omitempty"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	IsVisible    bool       `gorm:"default:true" json:"is_visible"`
	CreatedBy    string     `gorm:"type:uuid" json:"created_by,omitempty"`
}
