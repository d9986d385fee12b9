package analytics

import (
	"fmt"
	"sort"

	"paisa/internal/models"
)

// MonthAmount is one month's total in a monthly trend.
type MonthAmount struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// CategoryInsights summarizes long-term spending within one category.
type CategoryInsights struct {
	Category              string        `json:"category"`
	TotalSpent            float64       `json:"total_spent"`
	TotalTransactions     int           `json:"total_transactions"`
	AveragePerMonth       float64       `json:"average_per_month"`
	AveragePerTransaction float64       `json:"average_per_transaction"`
	BestMonth             MonthAmount   `json:"best_month"`
	WorstMonth            MonthAmount   `json:"worst_month"`
	MonthlyTrend          []MonthAmount `json:"monthly_trend"`
	Suggestion            string        `json:"suggestion"`
}

// InsightsForCategory aggregates a category's spending by month. Best month
// is the cheapest, worst the most expensive. The suggestion proposes a cap
// at 90% of the monthly average. Categories without expenses produce an
// empty insight.
func InsightsForCategory(category string, expenses []models.Expense) CategoryInsights {
	insights := CategoryInsights{Category: category, MonthlyTrend: []MonthAmount{}}

	perMonth := make(map[string]float64)
	for _, e := range expenses {
		if e.Category != category {
			continue
		}
		insights.TotalSpent += e.Amount
		insights.TotalTransactions++
		perMonth[e.Date.Format("2006-01")] += e.Amount
	}

	if insights.TotalTransactions == 0 {
		return insights
	}

	months := make([]string, 0, len(perMonth))
	for month := range perMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	best := MonthAmount{Month: months[0], Amount: perMonth[months[0]]}
	worst := best
	for _, month := range months {
		amount := perMonth[month]
		insights.MonthlyTrend = append(insights.MonthlyTrend, MonthAmount{Month: month, Amount: amount})
		if amount < best.Amount {
			best = MonthAmount{Month: month, Amount: amount}
		}
		if amount > worst.Amount {
			worst = MonthAmount{Month: month, Amount: amount}
		}
	}

	insights.AveragePerMonth = insights.TotalSpent / float64(len(perMonth))
	insights.AveragePerTransaction = insights.TotalSpent / float64(insights.TotalTransactions)
	insights.BestMonth = best
	insights.WorstMonth = worst
	insights.Suggestion = fmt.Sprintf("Try to keep %s spending below %.2f/month", category, insights.AveragePerMonth*0.9)

	return insights
}
