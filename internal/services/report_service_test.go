package services

import (
	"testing"
	"time"

	"paisa/internal/analytics"
	"paisa/internal/models"
	"paisa/internal/testutil"
)

// captureSender records sends instead of talking to an SMTP relay.
type captureSender struct {
	to     string
	report *analytics.WeeklyReport
	sends  int
}

func (c *captureSender) SendWeeklyReport(to string, report *analytics.WeeklyReport) error {
	c.to = to
	c.report = report
	c.sends++
	return nil
}

func TestGetWeeklyReport(t *testing.T) {
	t.Run("trailing_week_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, nil)

		now := time.Now()
		testutil.CreateTestExpense(t, db, 800, "Food", now.AddDate(0, 0, -2))
		testutil.CreateTestExpense(t, db, 200, "Transport", now.AddDate(0, 0, -1))
		testutil.CreateTestExpense(t, db, 9999, "Food", now.AddDate(0, 0, -10))
		testutil.CreateTestIncome(t, db, 5000, now.AddDate(0, 0, -3))

		report, err := svc.GetWeeklyReport(models.DefaultUserID)
		testutil.AssertNoError(t, err)

		testutil.AssertAlmostEqual(t, report.TotalSpending, 1000)
		testutil.AssertAlmostEqual(t, report.TotalIncome, 5000)
		testutil.AssertAlmostEqual(t, report.Savings, 4000)
		if report.TopCategory.Name != "Food" {
			t.Errorf("expected Food as top category, got %s", report.TopCategory.Name)
		}
		testutil.AssertAlmostEqual(t, report.NextWeekTarget, 800)
	})
}

func TestEmailWeeklyReport(t *testing.T) {
	t.Run("sends_to_explicit_recipient", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &captureSender{}
		svc := NewReportService(db, sender)

		testutil.CreateTestExpense(t, db, 500, "Food", time.Now().AddDate(0, 0, -1))

		report, err := svc.EmailWeeklyReport(models.DefaultUserID, "user@example.com")
		testutil.AssertNoError(t, err)

		if sender.sends != 1 || sender.to != "user@example.com" {
			t.Errorf("expected one send to user@example.com, got %d to %q", sender.sends, sender.to)
		}
		testutil.AssertAlmostEqual(t, sender.report.TotalSpending, report.TotalSpending)
	})

	t.Run("falls_back_to_preference_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &captureSender{}
		svc := NewReportService(db, sender)

		prefSvc := NewPreferenceService(db)
		_, err := prefSvc.SavePreferences(models.DefaultUserID, models.PersonalityBalanced, "en", true, "saved@example.com")
		testutil.AssertNoError(t, err)

		_, err = svc.EmailWeeklyReport(models.DefaultUserID, "")
		testutil.AssertNoError(t, err)

		if sender.to != "saved@example.com" {
			t.Errorf("expected preference email used, got %q", sender.to)
		}
	})

	t.Run("no_recipient_available", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, &captureSender{})

		_, err := svc.EmailWeeklyReport(models.DefaultUserID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("sender_not_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db, nil)

		_, err := svc.EmailWeeklyReport(models.DefaultUserID, "user@example.com")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
