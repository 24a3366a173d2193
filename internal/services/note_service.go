package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
)

// noteService manages the admin panel's sticky notes.
type noteService struct {
	db *gorm.DB
}

// NewNoteService creates a new NoteServicer.
func NewNoteService(db *gorm.DB) NoteServicer {
	return &noteService{db: db}
}

// ListNotes returns notes with pinned ones first, most recently updated on
// top within each group.
func (s *noteService) ListNotes() ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Order("is_pinned DESC, updated_at DESC").Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return notes, nil
}

// CreateNote stores a new note. Content is required; an unknown color falls
// back to the default swatch.
func (s *noteService) CreateNote(userID, title, content, color string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note content is required")
	}

	note := &models.Note{
		Title:     strings.TrimSpace(title),
		Content:   content,
		Color:     normalizeNoteColor(color),
		CreatedBy: userID,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return note, nil
}

// UpdateNote replaces the title, content and color of an existing note.
func (s *noteService) UpdateNote(id, title, content, color string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note content is required")
	}

	note, err := s.getNoteByID(id)
	if err != nil {
		return nil, err
	}

	note.Title = strings.TrimSpace(title)
	note.Content = content
	note.Color = normalizeNoteColor(color)
	if err := s.db.Save(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return note, nil
}

// TogglePin flips the pinned flag and returns the updated note.
func (s *noteService) TogglePin(id string) (*models.Note, error) {
	note, err := s.getNoteByID(id)
	if err != nil {
		return nil, err
	}

	note.IsPinned = !note.IsPinned
	if err := s.db.Save(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return note, nil
}

// DeleteNote removes a note permanently.
func (s *noteService) DeleteNote(id string) error {
	note, err := s.getNoteByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(note).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

func (s *noteService) getNoteByID(id string) (*models.Note, error) {
	var note models.Note
	if err := s.db.Where("id = ?", id).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &note, nil
}

func normalizeNoteColor(color string) string {
	for _, c := range models.NoteColors {
		if color == c {
			return color
		}
	}
	return models.NoteColors[0]
}
