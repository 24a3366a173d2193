package ledger

import (
	"sort"

	"assistec/internal/models"
)

// CategoryTotal is the subtotal of one category within a type's breakdown.
// Share is the subtotal's proportion of the type's grand total, in [0, 1].
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   int64   `json:"amount"`
	Share    float64 `json:"share"`
}

// Summary holds the derived aggregates for one period's transactions.
// All amounts are in cents; Balance may be negative.
type Summary struct {
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	Balance      int64           `json:"balance"`
	Income       []CategoryTotal `json:"income_breakdown"`
	Expense      []CategoryTotal `json:"expense_breakdown"`
}

// Summarize computes totals, balance, and per-category breakdowns for a
// loaded transaction set. It is a pure function: transactions of a type
// that does not occur produce an empty breakdown, never a division by
// zero.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			s.TotalExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	s.Income = breakdown(transactions, models.TransactionTypeIncome, s.TotalIncome)
	s.Expense = breakdown(transactions, models.TransactionTypeExpense, s.TotalExpense)
	return s
}

// breakdown groups one type's transactions by category. Categories with no
// transactions are omitted; the result is sorted by subtotal descending,
// ties broken by category name for stable output.
func breakdown(transactions []models.Transaction, txType models.TransactionType, grandTotal int64) []CategoryTotal {
	if grandTotal == 0 {
		return []CategoryTotal{}
	}

	byCategory := make(map[string]int64)
	for _, t := range transactions {
		if t.Type == txType {
			byCategory[t.Category] += t.Amount
		}
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, CategoryTotal{
			Category: category,
			Amount:   amount,
			Share:    float64(amount) / float64(grandTotal),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}
