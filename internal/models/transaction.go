package models

import "time"

// TransactionType represents the type of a ledger transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single financial event in the business ledger.
// Amounts are stored in cents (BRL) and are always positive; the type
// decides whether they count as income or expense.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   string          `gorm:"type:uuid" json:"created_by,omitempty"`
}
