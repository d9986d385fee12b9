package analytics

import "paisa/internal/models"

// BadgeSpec describes a badge the user has newly qualified for.
type BadgeSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Badge qualification thresholds.
const (
	saverBadgeAmount      = 10000
	smartSpenderStreak    = 5
	consistencyCount      = 30
	superSaverRatePercent = 30
)

// EvaluateBadges returns the badges earned by the current ledger state that
// are not already owned. Owned is keyed by badge name.
func EvaluateBadges(expenses []models.Expense, incomes []models.Income, owned map[string]bool) []BadgeSpec {
	var totalExpenses, totalIncome float64
	nonRegret := 0
	for _, e := range expenses {
		totalExpenses += e.Amount
		if !e.IsRegret {
			nonRegret++
		}
	}
	for _, i := range incomes {
		totalIncome += i.Amount
	}
	savings := totalIncome - totalExpenses

	earned := []BadgeSpec{}
	award := func(name, description, icon string) {
		if !owned[name] {
			earned = append(earned, BadgeSpec{Name: name, Description: description, Icon: icon})
		}
	}

	if len(expenses) >= 1 {
		award("First Step", "Added your first expense!", "🎯")
	}
	if savings >= saverBadgeAmount {
		award("10K Saver", "Saved 10,000!", "💰")
	}
	if nonRegret >= smartSpenderStreak {
		award("Smart Spender", "5 purchases without regrets!", "🧠")
	}
	if len(expenses) >= consistencyCount {
		award("Consistency King", "Tracked 30+ expenses!", "👑")
	}
	if totalIncome > 0 && savings/totalIncome*100 >= superSaverRatePercent {
		award("Super Saver", "Achieved 30%+ savings rate!", "⭐")
	}

	return earned
}
