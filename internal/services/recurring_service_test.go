package services

import (
	"strings"
	"testing"
	"time"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestCreateRecurring(t *testing.T) {
	t.Run("monthly_with_pinned_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		recurring, err := svc.CreateRecurring(models.DefaultUserID, "Rent", 15000, "Housing", models.EntryTypeExpense, models.FrequencyMonthly, 1, "")
		testutil.AssertNoError(t, err)

		if recurring.NextDate.Day() != 1 {
			t.Errorf("expected next date pinned to day 1, got %d", recurring.NextDate.Day())
		}
		if !recurring.NextDate.After(time.Now()) {
			t.Errorf("expected next date in the future, got %v", recurring.NextDate)
		}
	})

	t.Run("weekly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		recurring, err := svc.CreateRecurring(models.DefaultUserID, "Gym", 500, "Health", models.EntryTypeExpense, models.FrequencyWeekly, 0, "")
		testutil.AssertNoError(t, err)

		days := time.Until(recurring.NextDate).Hours() / 24
		if days < 6 || days > 7.1 {
			t.Errorf("expected next date about a week out, got %v", recurring.NextDate)
		}
	})
}

func TestProcessDue(t *testing.T) {
	t.Run("materializes_due_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		now := time.Now()
		template := testutil.CreateTestRecurring(t, db, 1200, models.FrequencyMonthly, now.AddDate(0, 0, -1))

		result, err := svc.ProcessDue(models.DefaultUserID, now)
		testutil.AssertNoError(t, err)

		if result.Count != 1 {
			t.Fatalf("expected 1 processed, got %d", result.Count)
		}

		var expenses []models.Expense
		testutil.AssertNoError(t, db.Find(&expenses).Error)
		if len(expenses) != 1 {
			t.Fatalf("expected 1 materialized expense, got %d", len(expenses))
		}
		if !strings.HasSuffix(expenses[0].Description, "(Auto-added)") {
			t.Errorf("expected auto-added marker, got %q", expenses[0].Description)
		}
		testutil.AssertAlmostEqual(t, expenses[0].Amount, 1200)

		var refreshed models.RecurringTransaction
		testutil.AssertNoError(t, db.First(&refreshed, "id = ?", template.ID).Error)
		if !refreshed.NextDate.After(now) {
			t.Errorf("expected next date advanced past now, got %v", refreshed.NextDate)
		}
		if refreshed.LastProcessed == nil {
			t.Error("expected last processed to be set")
		}
	})

	t.Run("materializes_due_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		now := time.Now()
		template := &models.RecurringTransaction{
			UserID:    models.DefaultUserID,
			Name:      "Salary",
			Amount:    50000,
			Category:  "Salary",
			Type:      models.EntryTypeIncome,
			Frequency: models.FrequencyMonthly,
			NextDate:  now.AddDate(0, 0, -1),
			Currency:  "INR",
			IsActive:  true,
		}
		testutil.AssertNoError(t, db.Create(template).Error)

		result, err := svc.ProcessDue(models.DefaultUserID, now)
		testutil.AssertNoError(t, err)
		if result.Count != 1 {
			t.Fatalf("expected 1 processed, got %d", result.Count)
		}

		var incomes []models.Income
		testutil.AssertNoError(t, db.Find(&incomes).Error)
		if len(incomes) != 1 {
			t.Fatalf("expected 1 materialized income, got %d", len(incomes))
		}
		testutil.AssertAlmostEqual(t, incomes[0].Amount, 50000)
	})

	t.Run("skips_future_and_inactive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		now := time.Now()
		testutil.CreateTestRecurring(t, db, 100, models.FrequencyMonthly, now.AddDate(0, 0, 5))

		inactive := testutil.CreateTestRecurring(t, db, 200, models.FrequencyMonthly, now.AddDate(0, 0, -1))
		testutil.AssertNoError(t, db.Model(inactive).Update("is_active", false).Error)

		result, err := svc.ProcessDue(models.DefaultUserID, now)
		testutil.AssertNoError(t, err)

		if result.Count != 0 {
			t.Errorf("expected nothing processed, got %d", result.Count)
		}
	})

	t.Run("fires_once_even_when_far_behind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		now := time.Now()
		testutil.CreateTestRecurring(t, db, 300, models.FrequencyWeekly, now.AddDate(0, 0, -30))

		result, err := svc.ProcessDue(models.DefaultUserID, now)
		testutil.AssertNoError(t, err)

		if result.Count != 1 {
			t.Fatalf("expected 1 processed, got %d", result.Count)
		}

		var expenses []models.Expense
		testutil.AssertNoError(t, db.Find(&expenses).Error)
		if len(expenses) != 1 {
			t.Errorf("expected a single materialized expense, got %d", len(expenses))
		}
	})
}

func TestDeleteRecurring(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		err := svc.DeleteRecurring(models.DefaultUserID, "missing")
		testutil.AssertAppError(t, err, "RECURRING_NOT_FOUND")
	})
}
