package services

import (
	"io"

	"assistec/internal/ledger"
	"assistec/internal/models"
)

// UserServicer defines the contract for user and role management.
type UserServicer interface {
	CreateUserWithRole(email, password string, role models.AdminRole) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	RoleFor(userID string) (models.AdminRole, error)
	ListRoles() ([]models.UserRole, error)
	RevokeRole(roleID string) error
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	EnsureOwner(email, password string) error
}

// TransactionServicer defines the contract for the financial ledger.
type TransactionServicer interface {
	ListPeriod(period ledger.Period) ([]models.Transaction, error)
	PeriodSummary(period ledger.Period) (ledger.Summary, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	CreateFromDraft(userID string, draft ledger.Draft) (*models.Transaction, error)
	UpdateFromDraft(userID, id string, draft ledger.Draft) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// GalleryImageUpdate carries optional gallery image fields; nil means keep.
type GalleryImageUpdate struct {
	Caption      *string
	DisplayOrder *int
	IsVisible    *bool
}

// GalleryServicer defines the contract for the media gallery.
type GalleryServicer interface {
	ListImages(visibleOnly bool) ([]models.GalleryImage, error)
	UploadImage(userID, filename, contentType string, size int64, r io.Reader) (*models.GalleryImage, error)
	UpdateImage(id string, update GalleryImageUpdate) (*models.GalleryImage, error)
	DeleteImage(id string) error
}

// BusinessInfoUpdate carries the editable business profile fields.
type BusinessInfoUpdate struct {
	Name         string
	Phone        string
	Whatsapp     string
	Email        string
	Address      string
	AboutText    string
	WorkingHours string
}

// BusinessServicer defines the contract for the business profile.
type BusinessServicer interface {
	GetInfo() (*models.BusinessInfo, error)
	UpdateInfo(userID string, update BusinessInfoUpdate) (*models.BusinessInfo, error)
}

// AdvisoryResultInput is one row of a bulk advisory results save. An empty
// ID means insert; rows with a blank title are skipped.
type AdvisoryResultInput struct {
	ID           string
	Title        string
	Description  string
	Value        string
	MetricType   models.MetricType
	Period       string
	DisplayOrder int
	IsVisible    bool
}

// AdvisoryServicer defines the contract for advisory result metrics.
type AdvisoryServicer interface {
	ListResults(visibleOnly bool) ([]models.AdvisoryResult, error)
	SaveResults(userID string, inputs []AdvisoryResultInput) ([]models.AdvisoryResult, error)
	DeleteResult(id string) error
}

// CredentialServicer defines the contract for stored service credentials.
type CredentialServicer interface {
	ListCredentials() ([]models.Credential, error)
	CreateCredential(userID, serviceName, loginUsername, password, url, notes string) (*models.Credential, error)
	UpdateCredential(id, serviceName, loginUsername, password, url, notes string) (*models.Credential, error)
	DeleteCredential(id string) error
}

// NoteServicer defines the contract for project notes.
type NoteServicer interface {
	ListNotes() ([]models.Note, error)
	CreateNote(userID, title, content, color string) (*models.Note, error)
	UpdateNote(id, title, content, color string) (*models.Note, error)
	TogglePin(id string) (*models.Note, error)
	DeleteNote(id string) error
}
