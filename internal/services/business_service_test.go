package services

import (
	"testing"

	"assistec/internal/testutil"
)

func TestBusinessInfo(t *testing.T) {
	t.Run("get_before_first_save", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessService(db)

		info, err := svc.GetInfo()
		testutil.AssertNoError(t, err)
		if info != nil {
			t.Errorf("expected nil profile before first save, got %+v", info)
		}
	})

	t.Run("first_save_creates_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessService(db)
		user := testutil.CreateTestUser(t, db)

		saved, err := svc.UpdateInfo(user.ID, BusinessInfoUpdate{
			Name:     "  Assistec Informática  ",
			Phone:    "11 99999-0000",
			Whatsapp: "11 99999-0000",
		})
		testutil.AssertNoError(t, err)

		if saved.ID == "" {
			t.Fatal("expected non-empty profile ID")
		}
		if saved.Name != "Assistec Informática" {
			t.Errorf("expected trimmed name, got %q", saved.Name)
		}
		if saved.UpdatedBy != user.ID {
			t.Errorf("expected updated_by %s, got %s", user.ID, saved.UpdatedBy)
		}
	})

	t.Run("second_save_updates_same_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.UpdateInfo(user.ID, BusinessInfoUpdate{Name: "Assistec"})
		testutil.AssertNoError(t, err)

		second, err := svc.UpdateInfo(user.ID, BusinessInfoUpdate{Name: "Assistec Informática", Email: "contato@assistec.com"})
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected single profile row, got IDs %s and %s", first.ID, second.ID)
		}

		info, err := svc.GetInfo()
		testutil.AssertNoError(t, err)
		if info.Name != "Assistec Informática" || info.Email != "contato@assistec.com" {
			t.Errorf("unexpected stored profile %+v", info)
		}
	})

	t.Run("name_required", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateInfo(user.ID, BusinessInfoUpdate{Name: "   "})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
