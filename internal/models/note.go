package models

// NoteColors is the fixed palette a note may use.
var NoteColors = []string{"default", "yellow", "green", "blue", "pink", "purple"}

// Note is a free-form project note pinned to the admin panel
type Note struct {
	Base
	Title     string `json:"title,omitempty"`
	Content   string `gorm:"not null" json:"content"`
	Color     string `gorm:"default:default" json:"color"`
	IsPinned  bool   `gorm:"default:false" json:"is_pinned"`
	CreatedBy string `gorm:"type:uuid" json:"created_by,omitempty"`
}
