package analytics

import (
	"fmt"
	"time"

	"paisa/internal/models"
)

// BudgetState classifies how much of a budget has been used.
type BudgetState string

const (
	BudgetOnTrack  BudgetState = "on_track"
	BudgetWarning  BudgetState = "warning"
	BudgetExceeded BudgetState = "exceeded"
)

// Thresholds for budget states, in percent used. Both are inclusive:
// exactly 80% is a warning, exactly 100% is exceeded.
const (
	budgetWarningPercent  = 80
	budgetExceededPercent = 100
)

// BudgetStatus is the derived view of one category budget.
type BudgetStatus struct {
	Category     string      `json:"category"`
	Month        string      `json:"month"`
	Limit        float64     `json:"limit"`
	CurrentSpent float64     `json:"current_spent"`
	Remaining    float64     `json:"remaining"`
	PercentUsed  float64     `json:"percent_used"`
	Status       BudgetState `json:"status"`
	Message      string      `json:"message"`
}

// MonthKey formats a time as the YYYY-MM key used by budgets.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// SpentInMonth sums expense amounts for a category within a YYYY-MM month.
func SpentInMonth(expenses []models.Expense, category, month string) float64 {
	var total float64
	for _, e := range expenses {
		if e.Category == category && e.Date.Format("2006-01") == month {
			total += e.Amount
		}
	}
	return total
}

// StatusOfBudget recomputes a budget's spent amount from the expense records
// and classifies it. The spent amount is always derived here, never read
// from a stored counter.
func StatusOfBudget(budget models.Budget, expenses []models.Expense) BudgetStatus {
	spent := SpentInMonth(expenses, budget.Category, budget.Month)

	var percent float64
	if budget.MonthlyLimit > 0 {
		percent = spent / budget.MonthlyLimit * 100
	}

	var state BudgetState
	var message string
	switch {
	case percent >= budgetExceededPercent:
		state = BudgetExceeded
		message = fmt.Sprintf("Budget exceeded! You've spent %.1f%% of your limit.", percent)
	case percent >= budgetWarningPercent:
		state = BudgetWarning
		message = fmt.Sprintf("Warning! You've used %.1f%% of your budget.", percent)
	default:
		state = BudgetOnTrack
		message = fmt.Sprintf("You've used %.1f%% of your budget.", percent)
	}

	return BudgetStatus{
		Category:     budget.Category,
		Month:        budget.Month,
		Limit:        budget.MonthlyLimit,
		CurrentSpent: spent,
		Remaining:    budget.MonthlyLimit - spent,
		PercentUsed:  percent,
		Status:       state,
		Message:      message,
	}
}
