package analytics

import (
	"testing"
	"time"

	"paisa/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		name string
		freq models.Frequency
		from time.Time
		want time.Time
	}{
		{"weekly", models.FrequencyWeekly, day(2025, 6, 1), day(2025, 6, 8)},
		{"biweekly", models.FrequencyBiweekly, day(2025, 6, 1), day(2025, 6, 15)},
		{"monthly_same_day", models.FrequencyMonthly, day(2025, 6, 15), day(2025, 7, 15)},
		{"monthly_clamps_to_shorter_month", models.FrequencyMonthly, day(2025, 1, 31), day(2025, 2, 28)},
		{"monthly_clamps_to_leap_february", models.FrequencyMonthly, day(2024, 1, 31), day(2024, 2, 29)},
		{"monthly_clamp_30_day_month", models.FrequencyMonthly, day(2025, 3, 31), day(2025, 4, 30)},
		{"quarterly", models.FrequencyQuarterly, day(2025, 1, 15), day(2025, 4, 15)},
		{"quarterly_clamps", models.FrequencyQuarterly, day(2024, 11, 30), day(2025, 2, 28)},
		{"yearly", models.FrequencyYearly, day(2025, 3, 10), day(2026, 3, 10)},
		{"yearly_leap_day_clamps", models.FrequencyYearly, day(2024, 2, 29), day(2025, 2, 28)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextOccurrence(tc.freq, tc.from)
			if !got.Equal(tc.want) {
				t.Errorf("expected %s, got %s", tc.want.Format(time.RFC3339), got.Format(time.RFC3339))
			}
		})
	}

	t.Run("unknown_frequency_is_identity", func(t *testing.T) {
		from := day(2025, 6, 1)
		if got := NextOccurrence(models.Frequency("bogus"), from); !got.Equal(from) {
			t.Errorf("expected unchanged date, got %s", got)
		}
	})
}

func TestNextMonthlyOnDay(t *testing.T) {
	t.Run("later_this_month", func(t *testing.T) {
		got := NextMonthlyOnDay(day(2025, 6, 5), 20)
		if got.Day() != 20 || got.Month() != time.June {
			t.Errorf("expected June 20, got %s", got)
		}
	})

	t.Run("already_passed_rolls_to_next_month", func(t *testing.T) {
		got := NextMonthlyOnDay(day(2025, 6, 25), 20)
		if got.Day() != 20 || got.Month() != time.July {
			t.Errorf("expected July 20, got %s", got)
		}
	})

	t.Run("day_31_clamps_in_short_months", func(t *testing.T) {
		got := NextMonthlyOnDay(day(2025, 2, 1), 31)
		if got.Day() != 28 || got.Month() != time.February {
			t.Errorf("expected Feb 28, got %s", got)
		}
	})

	t.Run("same_instant_rolls_to_next_month", func(t *testing.T) {
		from := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
		got := NextMonthlyOnDay(from, 20)
		if got.Day() != 20 || got.Month() != time.July {
			t.Errorf("expected July 20, got %s", got)
		}
	})
}
