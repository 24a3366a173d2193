package services

import (
	"testing"
	"time"

	"assistec/internal/ledger"
	"assistec/internal/models"
	"assistec/internal/testutil"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestListPeriod(t *testing.T) {
	t.Run("only_period_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		// February, March, and April entries; only March should load.
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 10000, day(2025, time.February, 28))
		inMarch1 := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 20000, day(2025, time.March, 1))
		inMarch2 := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, "Aluguel", 5000, day(2025, time.March, 31))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, "Aluguel", 7000, day(2025, time.April, 1))

		got, err := svc.ListPeriod(ledger.Period{Year: 2025, Month: 3})
		testutil.AssertNoError(t, err)

		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		ids := map[string]bool{got[0].ID: true, got[1].ID: true}
		if !ids[inMarch1.ID] || !ids[inMarch2.ID] {
			t.Errorf("expected the two March transactions, got %v", ids)
		}
	})

	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 1000, day(2025, time.March, 5))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 2000, day(2025, time.March, 20))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 3000, day(2025, time.March, 10))

		got, err := svc.ListPeriod(ledger.Period{Year: 2025, Month: 3})
		testutil.AssertNoError(t, err)

		if len(got) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Date.After(got[i-1].Date) {
				t.Errorf("transactions out of order: %v before %v", got[i-1].Date, got[i].Date)
			}
		}
	})

	t.Run("empty_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		got, err := svc.ListPeriod(ledger.Period{Year: 2025, Month: 3})
		testutil.AssertNoError(t, err)
		if len(got) != 0 {
			t.Errorf("expected no transactions, got %d", len(got))
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.ListPeriod(ledger.Period{Year: 2025, Month: 13})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestPeriodSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)

	testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 30000, day(2025, time.March, 3))
	testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Peça", 10000, day(2025, time.March, 10))
	testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, "Aluguel", 25000, day(2025, time.March, 5))
	// Outside the period, must not count.
	testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 99999, day(2025, time.April, 1))

	summary, err := svc.PeriodSummary(ledger.Period{Year: 2025, Month: 3})
	testutil.AssertNoError(t, err)

	if summary.TotalIncome != 40000 {
		t.Errorf("expected income 40000, got %d", summary.TotalIncome)
	}
	if summary.TotalExpense != 25000 {
		t.Errorf("expected expense 25000, got %d", summary.TotalExpense)
	}
	if summary.Balance != 15000 {
		t.Errorf("expected balance 15000, got %d", summary.Balance)
	}
	if len(summary.Income) != 2 || summary.Income[0].Category != "Conserto" {
		t.Errorf("unexpected income breakdown %+v", summary.Income)
	}
}

func TestCreateFromDraft(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateFromDraft(user.ID, ledger.Draft{
			Type:        models.TransactionTypeIncome,
			Amount:      "150,50",
			Description: "Conserto de notebook",
			Category:    "Conserto",
			Date:        "2025-03-15",
		})
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.Amount != 15050 {
			t.Errorf("expected amount 15050, got %d", tx.Amount)
		}
		if tx.CreatedBy != user.ID {
			t.Errorf("expected created_by %s, got %s", user.ID, tx.CreatedBy)
		}
	})

	t.Run("invalid_draft_not_persisted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateFromDraft(user.ID, ledger.Draft{
			Type:        models.TransactionTypeIncome,
			Amount:      "abc",
			Description: "Conserto",
			Category:    "Conserto",
			Date:        "2025-03-15",
		})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no persisted transactions, got %d", count)
		}
	})
}

func TestUpdateFromDraft(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 10000, day(2025, time.March, 1))

		updated, err := svc.UpdateFromDraft(user.ID, existing.ID, ledger.Draft{
			Type:        models.TransactionTypeExpense,
			Amount:      "99.90",
			Description: "Compra de peças",
			Category:    "Peças/Estoque",
			Date:        "2025-03-02",
		})
		testutil.AssertNoError(t, err)

		if updated.Type != models.TransactionTypeExpense {
			t.Errorf("expected type expense, got %s", updated.Type)
		}
		if updated.Amount != 9990 {
			t.Errorf("expected amount 9990, got %d", updated.Amount)
		}
	})

	t.Run("invalid_draft_leaves_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 10000, day(2025, time.March, 1))

		_, err := svc.UpdateFromDraft(user.ID, existing.ID, ledger.Draft{
			Type: models.TransactionTypeExpense,
		})
		testutil.AssertAppError(t, err, "MISSING_DESCRIPTION")

		var reloaded models.Transaction
		testutil.AssertNoError(t, db.Where("id = ?", existing.ID).First(&reloaded).Error)
		if reloaded.Amount != 10000 || reloaded.Type != models.TransactionTypeIncome {
			t.Errorf("record should be unchanged, got %+v", reloaded)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateFromDraft(user.ID, "0195c3a0-0000-7000-8000-000000000000", ledger.Draft{
			Type:        models.TransactionTypeIncome,
			Amount:      "10",
			Description: "x",
			Category:    "Conserto",
			Date:        "2025-03-01",
		})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		existing := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Conserto", 10000, day(2025, time.March, 1))

		testutil.AssertNoError(t, svc.DeleteTransaction(existing.ID))

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected transaction deleted, found %d", count)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.DeleteTransaction("0195c3a0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
