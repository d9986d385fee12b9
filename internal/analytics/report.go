package analytics

import (
	"sort"
	"time"

	"paisa/internal/models"
)

// nextWeekTargetRatio sets next week's spending target relative to this
// week's total.
const nextWeekTargetRatio = 0.8

// CategoryAmount names a category with its summed amount.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// WeeklyReport summarizes the trailing seven days of activity.
type WeeklyReport struct {
	WeekStart         string             `json:"week_start"` // YYYY-MM-DD
	WeekEnd           string             `json:"week_end"`
	TotalSpending     float64            `json:"total_spending"`
	TotalIncome       float64            `json:"total_income"`
	Savings           float64            `json:"savings"`
	TopCategory       CategoryAmount     `json:"top_category"`
	BiggestPurchase   *models.Expense    `json:"biggest_purchase,omitempty"`
	TransactionCount  int                `json:"transaction_count"`
	NextWeekTarget    float64            `json:"next_week_target"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

// Weekly builds the weekly report for the seven days ending at `now`.
// The top category breaks amount ties by name so output is deterministic.
func Weekly(expenses []models.Expense, incomes []models.Income, now time.Time) WeeklyReport {
	weekAgo := now.AddDate(0, 0, -7)

	breakdown := make(map[string]float64)
	var totalSpending float64
	var biggest *models.Expense
	count := 0

	for i := range expenses {
		e := expenses[i]
		if e.Date.Before(weekAgo) || e.Date.After(now) {
			continue
		}
		totalSpending += e.Amount
		breakdown[e.Category] += e.Amount
		count++
		if biggest == nil || e.Amount > biggest.Amount {
			biggest = &expenses[i]
		}
	}

	var totalIncome float64
	for _, inc := range incomes {
		if inc.Date.Before(weekAgo) || inc.Date.After(now) {
			continue
		}
		totalIncome += inc.Amount
	}

	return WeeklyReport{
		WeekStart:         weekAgo.Format("2006-01-02"),
		WeekEnd:           now.Format("2006-01-02"),
		TotalSpending:     totalSpending,
		TotalIncome:       totalIncome,
		Savings:           totalIncome - totalSpending,
		TopCategory:       topCategory(breakdown),
		BiggestPurchase:   biggest,
		TransactionCount:  count,
		NextWeekTarget:    totalSpending * nextWeekTargetRatio,
		CategoryBreakdown: breakdown,
	}
}

func topCategory(breakdown map[string]float64) CategoryAmount {
	if len(breakdown) == 0 {
		return CategoryAmount{Name: "None"}
	}

	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	top := CategoryAmount{Name: names[0], Amount: breakdown[names[0]]}
	for _, name := range names[1:] {
		if breakdown[name] > top.Amount {
			top = CategoryAmount{Name: name, Amount: breakdown[name]}
		}
	}
	return top
}
