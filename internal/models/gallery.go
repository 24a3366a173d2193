package models

// GalleryImage represents an uploaded image shown in the site gallery.
// FilePath is the storage object key; FileURL is the public URL derived
// from it at upload time.
type GalleryImage struct {
	Base
	FilePath     string `gorm:"not null" json:"file_path"`
	FileURL      string `gorm:"not null" json:"file_url"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsVisible    bool   `gorm:"default:true" json:"is_visible"`
	UploadedBy   string `gorm:"type:uuid" json:"uploaded_by,omitempty"`
}
