package services

import (
	"testing"
	"time"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestGetUserGoals(t *testing.T) {
	t.Run("derives_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		testutil.CreateTestGoal(t, db, 50000, 15000, time.Now().AddDate(0, 6, 0))

		views, err := svc.GetUserGoals(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		if len(views) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(views))
		}
		testutil.AssertAlmostEqual(t, views[0].ProgressPercent, 30)
	})

	t.Run("progress_capped_at_100", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		testutil.CreateTestGoal(t, db, 10000, 12000, time.Now().AddDate(0, 6, 0))

		views, err := svc.GetUserGoals(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		testutil.AssertAlmostEqual(t, views[0].ProgressPercent, 100)
	})
}

func TestUpdateGoalAmount(t *testing.T) {
	t.Run("sets_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 50000, 0, time.Now().AddDate(0, 6, 0))

		updated, err := svc.UpdateGoalAmount(models.DefaultUserID, goal.ID, 20000)
		testutil.AssertNoError(t, err)

		testutil.AssertAlmostEqual(t, updated.CurrentAmount, 20000)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.UpdateGoalAmount(models.DefaultUserID, "missing", 100)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestGetGoalPace(t *testing.T) {
	t.Run("pace_for_open_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 50000, 15000, time.Now().AddDate(0, 0, 100))

		pace, err := svc.GetGoalPace(models.DefaultUserID, goal.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertAlmostEqual(t, pace.RemainingAmount, 35000)
		if pace.DaysRemaining < 99 || pace.DaysRemaining > 100 {
			t.Errorf("expected about 100 days remaining, got %d", pace.DaysRemaining)
		}
		if pace.DailySavingsNeeded <= 0 {
			t.Errorf("expected positive daily pace, got %v", pace.DailySavingsNeeded)
		}
	})

	t.Run("met_goal_needs_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 10000, 10000, time.Now().AddDate(0, 1, 0))

		pace, err := svc.GetGoalPace(models.DefaultUserID, goal.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertAlmostEqual(t, pace.DailySavingsNeeded, 0)
	})
}
