package services

import (
	"testing"
	"time"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestCheckAndAward(t *testing.T) {
	t.Run("first_expense_awards_first_step", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBadgeService(db)

		testutil.CreateTestExpense(t, db, 100, "Food", time.Now())

		result, err := svc.CheckAndAward(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		if len(result.NewBadges) != 1 || result.NewBadges[0].Name != "First Step" {
			t.Fatalf("expected First Step badge, got %+v", result.NewBadges)
		}
		if result.TotalBadges != 1 {
			t.Errorf("expected 1 total badge, got %d", result.TotalBadges)
		}
	})

	t.Run("idempotent_per_badge", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBadgeService(db)

		testutil.CreateTestExpense(t, db, 100, "Food", time.Now())

		_, err := svc.CheckAndAward(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		second, err := svc.CheckAndAward(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		if len(second.NewBadges) != 0 {
			t.Errorf("expected no new badges on second check, got %+v", second.NewBadges)
		}
		if second.TotalBadges != 1 {
			t.Errorf("expected total to stay at 1, got %d", second.TotalBadges)
		}
	})

	t.Run("savings_badges", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBadgeService(db)

		testutil.CreateTestIncome(t, db, 50000, time.Now())
		testutil.CreateTestExpense(t, db, 10000, "Food", time.Now())

		result, err := svc.CheckAndAward(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		names := make(map[string]bool)
		for _, b := range result.NewBadges {
			names[b.Name] = true
		}
		if !names["10K Saver"] {
			t.Error("expected 10K Saver badge")
		}
		if !names["Super Saver"] {
			t.Error("expected Super Saver badge at 80% savings rate")
		}
	})
}

func TestGetUserBadges(t *testing.T) {
	t.Run("persisted_after_award", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBadgeService(db)

		testutil.CreateTestExpense(t, db, 100, "Food", time.Now())
		_, err := svc.CheckAndAward(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		badges, err := svc.GetUserBadges(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		if len(badges) != 1 {
			t.Fatalf("expected 1 badge, got %d", len(badges))
		}
		if badges[0].EarnedDate.IsZero() {
			t.Error("expected earned date to be set")
		}
	})
}
