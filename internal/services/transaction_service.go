package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "assistec/internal/errors"
	"assistec/internal/ledger"
	"assistec/internal/models"
)

// transactionService handles the financial ledger business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListPeriod loads every transaction dated within the period's first and
// last calendar day, newest first. The most recent successful load fully
// replaces whatever the caller rendered before; partial merges are never
// performed.
func (s *transactionService) ListPeriod(period ledger.Period) ([]models.Transaction, error) {
	if !period.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start, end := period.Bounds()
	var transactions []models.Transaction
	if err := s.db.
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return transactions, nil
}

// PeriodSummary loads the period and computes its aggregates in one call.
func (s *transactionService) PeriodSummary(period ledger.Period) (ledger.Summary, error) {
	transactions, err := s.ListPeriod(period)
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(transactions), nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// CreateFromDraft validates the draft and inserts a new transaction with
// the creating user's identity attached. Validation failures are returned
// before any store interaction.
func (s *transactionService) CreateFromDraft(userID string, draft ledger.Draft) (*models.Transaction, error) {
	entry, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		Category:    entry.Category,
		Date:        entry.Date,
		Notes:       entry.Notes,
		CreatedBy:   userID,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return transaction, nil
}

// UpdateFromDraft validates the draft and applies it as a full-record
// update keyed by id. The stored record is untouched if validation or the
// write fails, so the caller keeps the draft open for retry.
func (s *transactionService) UpdateFromDraft(userID, id string, draft ledger.Draft) (*models.Transaction, error) {
	entry, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	transaction.Type = entry.Type
	transaction.Amount = entry.Amount
	transaction.Description = entry.Description
	transaction.Category = entry.Category
	transaction.Date = entry.Date
	transaction.Notes = entry.Notes
	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSubmitFailed, err)
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction permanently. There is no
// soft-delete; on failure the record remains in place unchanged.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}
