package analytics

import (
	"fmt"
	"time"

	"paisa/internal/models"
)

// Late-night window: 22:00 inclusive through 04:00 exclusive, crossing
// midnight.
const (
	lateNightStartHour = 22
	lateNightEndHour   = 4
)

// lateNightAlertThreshold is the order count above which a late-night
// ordering alert fires.
const lateNightAlertThreshold = 3

// highSpendingDayRatio flags weekdays whose spending exceeds this share of
// the highest weekday's spending.
const highSpendingDayRatio = 0.75

// weekdayOrder fixes alert emission order for deterministic output.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Alert is a machine-tagged behavioural warning.
type Alert struct {
	Type    string `json:"type"`
	Day     string `json:"day,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message"`
}

// BehaviourReport summarizes spending patterns and the alerts they trigger.
type BehaviourReport struct {
	WeekdaySpending     map[string]float64 `json:"weekday_spending"`
	LateNightOrderCount int                `json:"late_night_order_count"`
	WeekendSpending     float64            `json:"weekend_spending"`
	Alerts              []Alert            `json:"alerts"`
}

// IsLateNight reports whether an hour falls in the late-night window.
func IsLateNight(hour int) bool {
	return hour >= lateNightStartHour || hour < lateNightEndHour
}

// Behaviour analyzes expense timestamps for spending patterns: per-weekday
// totals, late-night order counts, and weekend spending. Alerts fire for
// weekdays exceeding 75% of the heaviest day and for more than three
// late-night orders. No alerts are emitted when no condition is met.
func Behaviour(expenses []models.Expense) BehaviourReport {
	weekdaySpending := make(map[string]float64)
	lateNight := 0
	var weekendSpending float64

	for _, e := range expenses {
		day := e.Date.Weekday()
		weekdaySpending[day.String()] += e.Amount

		if IsLateNight(e.Date.Hour()) {
			lateNight++
		}
		if day == time.Saturday || day == time.Sunday {
			weekendSpending += e.Amount
		}
	}

	var maxDay float64
	for _, amount := range weekdaySpending {
		if amount > maxDay {
			maxDay = amount
		}
	}

	alerts := []Alert{}
	for _, day := range weekdayOrder {
		amount, ok := weekdaySpending[day.String()]
		if !ok {
			continue
		}
		if amount > maxDay*highSpendingDayRatio {
			alerts = append(alerts, Alert{
				Type:    "high_spending_day",
				Day:     day.String(),
				Message: fmt.Sprintf("You tend to overspend on %ss. Be mindful today!", day),
			})
		}
	}

	if lateNight > lateNightAlertThreshold {
		alerts = append(alerts, Alert{
			Type:    "late_night_ordering",
			Count:   lateNight,
			Message: fmt.Sprintf("You've made %d late-night purchases. Consider setting a reminder!", lateNight),
		})
	}

	return BehaviourReport{
		WeekdaySpending:     weekdaySpending,
		LateNightOrderCount: lateNight,
		WeekendSpending:     weekendSpending,
		Alerts:              alerts,
	}
}
