package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"assistec/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestUserWithRole creates a user and grants the given admin role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, role models.AdminRole) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	userRole := &models.UserRole{UserID: user.ID, Role: role}
	if err := db.Create(userRole).Error; err != nil {
		t.Fatalf("failed to create test user role: %v", err)
	}
	user.Roles = []models.UserRole{*userRole}
	return user
}

// CreateTestTransaction creates a transaction of the given type, category,
// and amount (in cents), dated on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        txType,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Category:    category,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGalleryImage creates a visible gallery image.
func CreateTestGalleryImage(t *testing.T, db *gorm.DB, displayOrder int) *models.GalleryImage {
	t.Helper()

	n := nextID()
	image := &models.GalleryImage{
		FilePath:     fmt.Sprintf("works/test-%d.jpg", n),
		FileURL:      fmt.Sprintf("http://localhost:8080/media/works/test-%d.jpg", n),
		DisplayOrder: displayOrder,
		IsVisible:    true,
	}
	if err := db.Create(image).Error; err != nil {
		t.Fatalf("failed to create test gallery image: %v", err)
	}
	return image
}

// CreateTestAdvisoryResult creates a visible advisory result card.
func CreateTestAdvisoryResult(t *testing.T, db *gorm.DB, displayOrder int) *models.AdvisoryResult {
	t.Helper()

	result := &models.AdvisoryResult{
		Title:        fmt.Sprintf("Test Result %d", nextID()),
		Value:        "42",
		MetricType:   models.MetricTypeNumber,
		DisplayOrder: displayOrder,
		IsVisible:    true,
	}
	if err := db.Create(result).Error; err != nil {
		t.Fatalf("failed to create test advisory result: %v", err)
	}
	return result
}

// CreateTestCredential creates a stored credential.
func CreateTestCredential(t *testing.T, db *gorm.DB) *models.Credential {
	t.Helper()

	n := nextID()
	credential := &models.Credential{
		ServiceName:   fmt.Sprintf("Service %d", n),
		LoginUsername: fmt.Sprintf("login%d", n),
		Password:      "secret",
	}
	if err := db.Create(credential).Error; err != nil {
		t.Fatalf("failed to create test credential: %v", err)
	}
	return credential
}

// CreateTestNote creates an unpinned note with the default color.
func CreateTestNote(t *testing.T, db *gorm.DB) *models.Note {
	t.Helper()

	note := &models.Note{
		Title:   fmt.Sprintf("Test Note %d", nextID()),
		Content: "test content",
		Color:   "default",
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}
