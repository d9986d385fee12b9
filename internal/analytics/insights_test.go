package analytics

import (
	"testing"
	"time"

	"paisa/internal/models"
)

func TestMerchantInsights(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("keyword_matching_and_ordering", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 300, Merchant: "Zomato", Description: "dinner", Date: now},
			{Amount: 150, Merchant: "", Description: "swiggy lunch", Date: now},
			{Amount: 800, Merchant: "Zomato", Description: "party order", Date: now},
			{Amount: 50, Merchant: "Corner shop", Description: "milk", Date: now},
		}

		insights := MerchantInsights(expenses)

		if len(insights) != 3 {
			t.Fatalf("expected 3 merchants, got %d", len(insights))
		}
		if insights[0].Merchant != "Zomato" || insights[0].TotalSpent != 1100 {
			t.Errorf("expected Zomato/1100 first, got %s/%v", insights[0].Merchant, insights[0].TotalSpent)
		}
		if insights[0].TransactionCount != 2 || insights[0].AverageTransaction != 550 {
			t.Errorf("unexpected Zomato stats: %+v", insights[0])
		}

		var others *MerchantSummary
		for i := range insights {
			if insights[i].Merchant == "Others" {
				others = &insights[i]
			}
		}
		if others == nil || others.TotalSpent != 50 {
			t.Errorf("expected Others bucket with 50, got %+v", others)
		}
	})

	t.Run("keeps_last_ten_transactions", func(t *testing.T) {
		var expenses []models.Expense
		for i := 0; i < 15; i++ {
			expenses = append(expenses, models.Expense{Amount: float64(i + 1), Merchant: "Netflix", Date: now})
		}

		insights := MerchantInsights(expenses)

		if len(insights[0].Transactions) != 10 {
			t.Fatalf("expected 10 kept transactions, got %d", len(insights[0].Transactions))
		}
		if insights[0].Transactions[0].Amount != 6 {
			t.Errorf("expected oldest kept amount 6, got %v", insights[0].Transactions[0].Amount)
		}
		if insights[0].TransactionCount != 15 {
			t.Errorf("count must still reflect all 15, got %d", insights[0].TransactionCount)
		}
	})
}

func TestInsightsForCategory(t *testing.T) {
	t.Run("monthly_aggregation", func(t *testing.T) {
		expenses := []models.Expense{
			expense(100, "Food", day(2025, 4, 10)),
			expense(300, "Food", day(2025, 5, 10)),
			expense(200, "Food", day(2025, 5, 20)),
			expense(999, "Transport", day(2025, 5, 21)),
		}

		insights := InsightsForCategory("Food", expenses)

		if insights.TotalSpent != 600 {
			t.Errorf("expected total 600, got %v", insights.TotalSpent)
		}
		if insights.TotalTransactions != 3 {
			t.Errorf("expected 3 transactions, got %d", insights.TotalTransactions)
		}
		if insights.AveragePerMonth != 300 {
			t.Errorf("expected 300/month, got %v", insights.AveragePerMonth)
		}
		if insights.AveragePerTransaction != 200 {
			t.Errorf("expected 200/transaction, got %v", insights.AveragePerTransaction)
		}
		if insights.BestMonth.Month != "2025-04" || insights.BestMonth.Amount != 100 {
			t.Errorf("unexpected best month: %+v", insights.BestMonth)
		}
		if insights.WorstMonth.Month != "2025-05" || insights.WorstMonth.Amount != 500 {
			t.Errorf("unexpected worst month: %+v", insights.WorstMonth)
		}
		if len(insights.MonthlyTrend) != 2 || insights.MonthlyTrend[0].Month != "2025-04" {
			t.Errorf("unexpected trend: %+v", insights.MonthlyTrend)
		}
	})

	t.Run("empty_category", func(t *testing.T) {
		insights := InsightsForCategory("Food", nil)
		if insights.TotalTransactions != 0 || insights.TotalSpent != 0 {
			t.Errorf("expected empty insights, got %+v", insights)
		}
	})
}

func TestRecommendations(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("food_delivery_rule", func(t *testing.T) {
		var expenses []models.Expense
		for i := 0; i < 5; i++ {
			expenses = append(expenses, models.Expense{Amount: 200, Merchant: "Swiggy", Category: "Food", Date: now})
		}

		recs := Recommendations(expenses, nil)

		if len(recs) != 1 || recs[0].Title != "Reduce Food Delivery" {
			t.Fatalf("expected food delivery recommendation, got %+v", recs)
		}
		if recs[0].PotentialSavings != 500 {
			t.Errorf("expected savings 500 (half of 1000), got %v", recs[0].PotentialSavings)
		}
	})

	t.Run("subscription_rule", func(t *testing.T) {
		subs := []models.Subscription{
			{Amount: 1500, BillingCycle: models.BillingCycleMonthly, IsActive: true},
		}

		recs := Recommendations(nil, subs)

		if len(recs) != 1 || recs[0].Title != "Review Subscriptions" {
			t.Fatalf("expected subscription recommendation, got %+v", recs)
		}
	})

	t.Run("no_rules_matched", func(t *testing.T) {
		recs := Recommendations(nil, nil)
		if len(recs) != 0 {
			t.Errorf("expected no recommendations, got %+v", recs)
		}
	})
}

func TestEvaluateBadges(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("first_expense_earns_first_step", func(t *testing.T) {
		badges := EvaluateBadges([]models.Expense{expense(10, "Food", now)}, nil, map[string]bool{})

		if len(badges) == 0 || badges[0].Name != "First Step" {
			t.Fatalf("expected First Step, got %+v", badges)
		}
	})

	t.Run("owned_badges_not_reawarded", func(t *testing.T) {
		owned := map[string]bool{"First Step": true, "Smart Spender": true}
		badges := EvaluateBadges([]models.Expense{expense(10, "Food", now)}, nil, owned)

		for _, b := range badges {
			if owned[b.Name] {
				t.Errorf("badge %s awarded twice", b.Name)
			}
		}
	})

	t.Run("super_saver_needs_30_percent_rate", func(t *testing.T) {
		incomes := []models.Income{{Amount: 100000, Date: now}}
		expenses := []models.Expense{expense(60000, "Rent", now)}

		badges := EvaluateBadges(expenses, incomes, map[string]bool{})

		var names []string
		for _, b := range badges {
			names = append(names, b.Name)
		}
		found := false
		for _, n := range names {
			if n == "Super Saver" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected Super Saver at 40%% savings rate, got %v", names)
		}
	})

	t.Run("no_income_no_super_saver", func(t *testing.T) {
		badges := EvaluateBadges([]models.Expense{expense(10, "Food", now)}, nil, map[string]bool{})
		for _, b := range badges {
			if b.Name == "Super Saver" {
				t.Error("Super Saver must not fire with zero income")
			}
		}
	})
}

func TestFindDuplicates(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("same_amount_category_day", func(t *testing.T) {
		expenses := []models.Expense{
			expense(250, "Food", now),
			expense(250, "Food", now.Add(3*time.Hour)),
			expense(250, "Transport", now),
			expense(100, "Food", now),
		}

		groups := FindDuplicates(expenses)

		if len(groups) != 1 {
			t.Fatalf("expected 1 duplicate group, got %d", len(groups))
		}
		if groups[0].Original.Category != "Food" || len(groups[0].Duplicates) != 1 {
			t.Errorf("unexpected group: %+v", groups[0])
		}
	})

	t.Run("different_days_not_duplicates", func(t *testing.T) {
		expenses := []models.Expense{
			expense(250, "Food", now),
			expense(250, "Food", now.AddDate(0, 0, 1)),
		}

		if groups := FindDuplicates(expenses); len(groups) != 0 {
			t.Errorf("expected no duplicates, got %+v", groups)
		}
	})
}
