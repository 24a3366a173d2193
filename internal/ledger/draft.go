package ledger

import (
	"strings"
	"time"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
)

// Draft is an in-progress, unpersisted transaction record as entered by
// the user. Amount and Date are kept as raw text until validation.
type Draft struct {
	Type        models.TransactionType
	Amount      string
	Description string
	Category    string
	Date        string
	Notes       string
}

// Entry is a validated, normalized draft ready for submission.
type Entry struct {
	Type        models.TransactionType
	Amount      int64
	Description string
	Category    string
	Date        time.Time
	Notes       string
}

// SetType switches the draft's transaction type and clears the selected
// category. The two types have disjoint category sets, so a category
// chosen for the previous type would be stale.
func (d *Draft) SetType(t models.TransactionType) {
	if d.Type != t {
		d.Type = t
		d.Category = ""
	}
}

// Validate checks the draft and returns its normalized form. Checks run
// in a fixed order and the first failure wins; nothing is submitted to
// the store until all of them pass.
func (d Draft) Validate() (Entry, error) {
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return Entry{}, apperrors.ErrMissingDescription
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return Entry{}, err
	}

	if d.Category == "" || !ValidCategory(d.Type, d.Category) {
		return Entry{}, apperrors.ErrMissingCategory
	}

	if d.Date == "" {
		return Entry{}, apperrors.ErrMissingDate
	}
	date, err := time.ParseInLocation("2006-01-02", d.Date, time.UTC)
	if err != nil {
		return Entry{}, apperrors.WithMessage(apperrors.ErrMissingDate, "Date must use the YYYY-MM-DD format")
	}

	return Entry{
		Type:        d.Type,
		Amount:      amount,
		Description: description,
		Category:    d.Category,
		Date:        date,
		Notes:       strings.TrimSpace(d.Notes),
	}, nil
}
