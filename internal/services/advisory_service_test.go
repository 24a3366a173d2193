package services

import (
	"testing"

	"assistec/internal/models"
	"assistec/internal/testutil"
)

func TestSaveResults(t *testing.T) {
	t.Run("inserts_new_cards", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		user := testutil.CreateTestUser(t, db)

		results, err := svc.SaveResults(user.ID, []AdvisoryResultInput{
			{Title: "Clientes atendidos", Value: "120", MetricType: models.MetricTypeNumber, IsVisible: true},
			{Title: "Satisfação", Value: "98", MetricType: models.MetricTypePercentage, DisplayOrder: 1, IsVisible: true},
		})
		testutil.AssertNoError(t, err)

		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].CreatedBy != user.ID {
			t.Errorf("expected created_by %s, got %s", user.ID, results[0].CreatedBy)
		}
	})

	t.Run("skips_blank_titles", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		user := testutil.CreateTestUser(t, db)

		results, err := svc.SaveResults(user.ID, []AdvisoryResultInput{
			{Title: "   "},
			{Title: "Valid", Value: "1"},
		})
		testutil.AssertNoError(t, err)

		if len(results) != 1 || results[0].Title != "Valid" {
			t.Errorf("expected only the titled row, got %+v", results)
		}
	})

	t.Run("updates_existing_card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		user := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestAdvisoryResult(t, db, 0)

		results, err := svc.SaveResults(user.ID, []AdvisoryResultInput{
			{ID: existing.ID, Title: "Renamed", Value: "7", MetricType: models.MetricTypeNumber, IsVisible: false},
		})
		testutil.AssertNoError(t, err)

		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].ID != existing.ID || results[0].Title != "Renamed" || results[0].IsVisible {
			t.Errorf("unexpected updated card %+v", results[0])
		}
	})

	t.Run("defaults_metric_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		user := testutil.CreateTestUser(t, db)

		results, err := svc.SaveResults(user.ID, []AdvisoryResultInput{{Title: "Plain"}})
		testutil.AssertNoError(t, err)
		if results[0].MetricType != models.MetricTypeText {
			t.Errorf("expected text metric type default, got %s", results[0].MetricType)
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.SaveResults(user.ID, []AdvisoryResultInput{
			{ID: "0195c3a0-0000-7000-8000-000000000000", Title: "Ghost"},
		})
		testutil.AssertAppError(t, err, "RESULT_NOT_FOUND")
	})
}

func TestListResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAdvisoryService(db)

	first := testutil.CreateTestAdvisoryResult(t, db, 0)
	second := testutil.CreateTestAdvisoryResult(t, db, 1)
	testutil.AssertNoError(t, db.Model(second).Update("is_visible", false).Error)

	all, err := svc.ListResults(false)
	testutil.AssertNoError(t, err)
	if len(all) != 2 || all[0].ID != first.ID {
		t.Errorf("expected both results ordered, got %+v", all)
	}

	public, err := svc.ListResults(true)
	testutil.AssertNoError(t, err)
	if len(public) != 1 || public[0].ID != first.ID {
		t.Errorf("expected only the visible result, got %+v", public)
	}
}

func TestDeleteResult(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)
		existing := testutil.CreateTestAdvisoryResult(t, db, 0)

		testutil.AssertNoError(t, svc.DeleteResult(existing.ID))

		remaining, err := svc.ListResults(false)
		testutil.AssertNoError(t, err)
		if len(remaining) != 0 {
			t.Errorf("expected no results, got %d", len(remaining))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAdvisoryService(db)

		err := svc.DeleteResult("0195c3a0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "RESULT_NOT_FOUND")
	})
}
