package analytics

import (
	"time"

	"paisa/internal/models"
)

// monthlyPaceDays is the fixed day count used to scale daily savings to a
// monthly figure, consistent across the whole system.
const monthlyPaceDays = 30

// GoalPace tells the user what saving rate reaches a goal by its target date.
type GoalPace struct {
	DaysRemaining        int     `json:"days_remaining"`
	RemainingAmount      float64 `json:"remaining_amount"`
	DailySavingsNeeded   float64 `json:"daily_savings_needed"`
	MonthlySavingsNeeded float64 `json:"monthly_savings_needed"`
}

// GoalProgressPercent returns how far along a goal is, capped at 100 for
// display even when the saved amount overshoots the target.
func GoalProgressPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	percent := current / target * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// PaceForGoal computes the savings pace needed for a goal as of today.
// A goal that is already met, or whose target date has passed, never yields
// a negative pace.
func PaceForGoal(goal models.Goal, today time.Time) GoalPace {
	daysRemaining := int(goal.TargetDate.Sub(today).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	divisor := daysRemaining
	if divisor < 1 {
		divisor = 1
	}
	daily := remaining / float64(divisor)

	return GoalPace{
		DaysRemaining:        daysRemaining,
		RemainingAmount:      remaining,
		DailySavingsNeeded:   daily,
		MonthlySavingsNeeded: daily * monthlyPaceDays,
	}
}
