package analytics

import (
	"time"

	"paisa/internal/models"
)

// NextOccurrence advances a recurring schedule by one interval from the
// given date. Month-based frequencies keep the day-of-month, clamped to the
// last day of shorter months (Jan 31 + 1 month = Feb 28/29).
func NextOccurrence(frequency models.Frequency, from time.Time) time.Time {
	switch frequency {
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case models.FrequencyMonthly:
		return addMonthsClamped(from, 1)
	case models.FrequencyQuarterly:
		return addMonthsClamped(from, 3)
	case models.FrequencyYearly:
		return addMonthsClamped(from, 12)
	}
	return from
}

// NextMonthlyOnDay returns the first date strictly after `from` that falls
// on the given day of month, clamped to shorter months. Used by templates
// pinned to a fixed billing day.
func NextMonthlyOnDay(from time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}

	year, month, _ := from.Date()
	candidate := dateOnDay(year, month, day, from)
	if candidate.After(from) {
		return candidate
	}
	next := time.Date(year, month, 1, 0, 0, 0, 0, from.Location()).AddDate(0, 1, 0)
	return dateOnDay(next.Year(), next.Month(), day, from)
}

func dateOnDay(year int, month time.Month, day int, ref time.Time) time.Time {
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	h, m, s := ref.Clock()
	return time.Date(year, month, day, h, m, s, 0, ref.Location())
}

// addMonthsClamped adds calendar months without the day-overflow
// normalization of time.AddDate.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)

	if last := lastDayOfMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, h, m, s, t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
