package ledger

import (
	"math"
	"testing"

	"assistec/internal/models"
)

func tx(txType models.TransactionType, category string, amount int64) models.Transaction {
	return models.Transaction{Type: txType, Amount: amount, Category: category}
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Summarize(nil)
		if s.TotalIncome != 0 || s.TotalExpense != 0 || s.Balance != 0 {
			t.Errorf("expected zero totals, got %+v", s)
		}
		if len(s.Income) != 0 || len(s.Expense) != 0 {
			t.Error("expected empty breakdowns")
		}
	})

	t.Run("totals_and_balance", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			tx(models.TransactionTypeIncome, "Conserto", 30000),
			tx(models.TransactionTypeIncome, "Peça", 10000),
			tx(models.TransactionTypeExpense, "Aluguel", 25000),
		})
		if s.TotalIncome != 40000 {
			t.Errorf("expected income 40000, got %d", s.TotalIncome)
		}
		if s.TotalExpense != 25000 {
			t.Errorf("expected expense 25000, got %d", s.TotalExpense)
		}
		if s.Balance != 15000 {
			t.Errorf("expected balance 15000, got %d", s.Balance)
		}
	})

	t.Run("negative_balance", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			tx(models.TransactionTypeIncome, "Conserto", 10000),
			tx(models.TransactionTypeExpense, "Aluguel", 25000),
		})
		if s.Balance != -15000 {
			t.Errorf("expected balance -15000, got %d", s.Balance)
		}
	})

	t.Run("breakdown_sorted_with_shares", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			tx(models.TransactionTypeExpense, "Aluguel", 50000),
			tx(models.TransactionTypeExpense, "Transporte", 10000),
			tx(models.TransactionTypeExpense, "Transporte", 15000),
			tx(models.TransactionTypeExpense, "Marketing", 25000),
		})

		if len(s.Expense) != 3 {
			t.Fatalf("expected 3 expense categories, got %d", len(s.Expense))
		}
		if s.Expense[0].Category != "Aluguel" || s.Expense[0].Amount != 50000 {
			t.Errorf("expected Aluguel 50000 first, got %+v", s.Expense[0])
		}
		if s.Expense[1].Category != "Marketing" || s.Expense[1].Amount != 25000 {
			t.Errorf("expected Marketing 25000 second, got %+v", s.Expense[1])
		}
		if s.Expense[2].Category != "Transporte" || s.Expense[2].Amount != 25000 {
			t.Errorf("expected Transporte 25000 third, got %+v", s.Expense[2])
		}

		if math.Abs(s.Expense[0].Share-0.5) > 1e-9 {
			t.Errorf("expected Aluguel share 0.5, got %f", s.Expense[0].Share)
		}

		var totalShare float64
		for _, ct := range s.Expense {
			totalShare += ct.Share
		}
		if math.Abs(totalShare-1.0) > 1e-9 {
			t.Errorf("expected shares to sum to 1, got %f", totalShare)
		}
	})

	t.Run("tie_broken_by_category_name", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			tx(models.TransactionTypeIncome, "Peça", 10000),
			tx(models.TransactionTypeIncome, "Conserto", 10000),
		})
		if s.Income[0].Category != "Conserto" || s.Income[1].Category != "Peça" {
			t.Errorf("expected alphabetical tie-break, got %+v", s.Income)
		}
	})

	t.Run("one_sided_month", func(t *testing.T) {
		// Only expenses: the income breakdown must be empty, not a
		// division by zero.
		s := Summarize([]models.Transaction{
			tx(models.TransactionTypeExpense, "Aluguel", 25000),
		})
		if len(s.Income) != 0 {
			t.Errorf("expected empty income breakdown, got %+v", s.Income)
		}
		if len(s.Expense) != 1 {
			t.Errorf("expected one expense category, got %+v", s.Expense)
		}
	})
}
