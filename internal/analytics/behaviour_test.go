package analytics

import (
	"testing"
	"time"

	"paisa/internal/models"
)

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestIsLateNight(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{22, true},  // inclusive lower bound
		{23, true},
		{0, true},
		{2, true},
		{3, true},
		{4, false}, // exclusive upper bound
		{14, false},
		{21, false},
	}
	for _, tc := range cases {
		if got := IsLateNight(tc.hour); got != tc.want {
			t.Errorf("hour %d: expected %v, got %v", tc.hour, tc.want, got)
		}
	}
}

func TestBehaviour(t *testing.T) {
	t.Run("late_night_count_crosses_midnight", func(t *testing.T) {
		// 2025-06-02 is a Monday
		expenses := []models.Expense{
			{Amount: 100, Category: "Food", Date: at(2025, 6, 2, 23, 30)},
			{Amount: 50, Category: "Food", Date: at(2025, 6, 3, 2, 15)},
			{Amount: 75, Category: "Food", Date: at(2025, 6, 3, 14, 0)},
		}

		report := Behaviour(expenses)

		if report.LateNightOrderCount != 2 {
			t.Errorf("expected 2 late-night orders, got %d", report.LateNightOrderCount)
		}
	})

	t.Run("weekend_spending", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 200, Category: "Food", Date: at(2025, 6, 7, 12, 0)}, // Saturday
			{Amount: 300, Category: "Food", Date: at(2025, 6, 8, 12, 0)}, // Sunday
			{Amount: 500, Category: "Food", Date: at(2025, 6, 9, 12, 0)}, // Monday
		}

		report := Behaviour(expenses)

		if report.WeekendSpending != 500 {
			t.Errorf("expected weekend spending 500, got %v", report.WeekendSpending)
		}
		if report.WeekdaySpending["Saturday"] != 200 || report.WeekdaySpending["Sunday"] != 300 {
			t.Errorf("unexpected weekday map: %v", report.WeekdaySpending)
		}
	})

	t.Run("high_spending_day_alert", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 1000, Category: "Food", Date: at(2025, 6, 6, 12, 0)}, // Friday
			{Amount: 100, Category: "Food", Date: at(2025, 6, 4, 12, 0)},  // Wednesday
		}

		report := Behaviour(expenses)

		var fridayAlert bool
		for _, a := range report.Alerts {
			if a.Type == "high_spending_day" && a.Day == "Friday" {
				fridayAlert = true
			}
			if a.Type == "high_spending_day" && a.Day == "Wednesday" {
				t.Error("Wednesday is only 10% of the top day, must not alert")
			}
		}
		if !fridayAlert {
			t.Error("expected high_spending_day alert for Friday")
		}
	})

	t.Run("late_night_alert_fires_above_threshold", func(t *testing.T) {
		var expenses []models.Expense
		for i := 0; i < 4; i++ {
			expenses = append(expenses, models.Expense{Amount: 50, Category: "Food", Date: at(2025, 6, 2+i, 23, 0)})
		}

		report := Behaviour(expenses)

		var found bool
		for _, a := range report.Alerts {
			if a.Type == "late_night_ordering" {
				found = true
				if a.Count != 4 {
					t.Errorf("expected count 4, got %d", a.Count)
				}
			}
		}
		if !found {
			t.Error("expected late_night_ordering alert with 4 orders")
		}
	})

	t.Run("late_night_alert_not_at_threshold", func(t *testing.T) {
		var expenses []models.Expense
		for i := 0; i < 3; i++ {
			expenses = append(expenses, models.Expense{Amount: 5000, Category: "Food", Date: at(2025, 6, 2, 23, 0).AddDate(0, 0, i)})
		}

		report := Behaviour(expenses)

		for _, a := range report.Alerts {
			if a.Type == "late_night_ordering" {
				t.Error("exactly 3 late-night orders must not alert")
			}
		}
	})

	t.Run("no_expenses_no_alerts", func(t *testing.T) {
		report := Behaviour(nil)
		if len(report.Alerts) != 0 {
			t.Errorf("expected no alerts, got %v", report.Alerts)
		}
		if report.LateNightOrderCount != 0 || report.WeekendSpending != 0 {
			t.Errorf("expected zero counters, got %+v", report)
		}
	})
}
