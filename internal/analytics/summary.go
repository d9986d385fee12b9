package analytics

import (
	"sort"
	"time"

	"paisa/internal/models"
)

// TopExpenseCount is how many expenses the dashboard highlights.
const TopExpenseCount = 3

// TrendPoint is a single day in a spending trend series.
type TrendPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DashboardSummary is the aggregate view backing the dashboard page.
type DashboardSummary struct {
	TotalIncome             float64            `json:"total_income"`
	TotalExpenses           float64            `json:"total_expenses"`
	TotalSavings            float64            `json:"total_savings"`
	SavingsRatePercent      float64            `json:"savings_rate_percent"`
	CategoryBreakdown       map[string]float64 `json:"category_breakdown"`
	MonthlySubscriptionCost float64            `json:"monthly_subscription_cost"`
	TotalRegretAmount       float64            `json:"total_regret_amount"`
	RegretCount             int                `json:"regret_count"`
	TopExpenses             []models.Expense   `json:"top_expenses"`
	DailyTrend              []TrendPoint       `json:"daily_trend"`
}

// Summary computes the dashboard aggregate from the raw collections.
//
// Income is taken from the explicit income ledger. TotalExpenses includes
// the monthly-equivalent cost of active subscriptions on top of the expense
// records themselves, so the category breakdown sums to TotalExpenses minus
// MonthlySubscriptionCost. The savings rate is zero when income is zero.
func Summary(expenses []models.Expense, incomes []models.Income, subscriptions []models.Subscription, now time.Time, trendDays int) DashboardSummary {
	var spent float64
	breakdown := make(map[string]float64)
	var regretTotal float64
	regretCount := 0

	for _, e := range expenses {
		spent += e.Amount
		breakdown[e.Category] += e.Amount
		if e.IsRegret {
			regretTotal += e.Amount
			regretCount++
		}
	}

	var income float64
	for _, i := range incomes {
		income += i.Amount
	}

	subCost := MonthlySubscriptionCost(subscriptions)
	totalExpenses := spent + subCost
	savings := income - totalExpenses

	var savingsRate float64
	if income > 0 {
		savingsRate = savings / income * 100
	}

	return DashboardSummary{
		TotalIncome:             income,
		TotalExpenses:           totalExpenses,
		TotalSavings:            savings,
		SavingsRatePercent:      savingsRate,
		CategoryBreakdown:       breakdown,
		MonthlySubscriptionCost: subCost,
		TotalRegretAmount:       regretTotal,
		RegretCount:             regretCount,
		TopExpenses:             TopExpenses(expenses, TopExpenseCount),
		DailyTrend:              DailyTrend(expenses, now, trendDays),
	}
}

// MonthlySubscriptionCost converts active subscriptions to their monthly
// equivalent: yearly charges divided by 12, weekly scaled by 52/12, daily
// by 30. Cancelled subscriptions do not count.
func MonthlySubscriptionCost(subscriptions []models.Subscription) float64 {
	var total float64
	for _, s := range subscriptions {
		if !s.IsActive {
			continue
		}
		switch s.BillingCycle {
		case models.BillingCycleDaily:
			total += s.Amount * 30
		case models.BillingCycleWeekly:
			total += s.Amount * 52 / 12
		case models.BillingCycleYearly:
			total += s.Amount / 12
		default:
			total += s.Amount
		}
	}
	return total
}

// TopExpenses returns the n highest-amount expenses in descending order.
// Ties keep their original insertion order.
func TopExpenses(expenses []models.Expense, n int) []models.Expense {
	ranked := make([]models.Expense, len(expenses))
	copy(ranked, expenses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// DailyTrend sums expense amounts per calendar day over the trailing window
// of `days` days ending at `now`. Days with no spending are reported as
// zero, never omitted.
func DailyTrend(expenses []models.Expense, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	perDay := make(map[string]float64)
	for _, e := range expenses {
		perDay[e.Date.Format("2006-01-02")] += e.Amount
	}

	trend := make([]TrendPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset).Format("2006-01-02")
		trend = append(trend, TrendPoint{Date: day, Amount: perDay[day]})
	}
	return trend
}
