package models

import "time"

// EntryType distinguishes recurring expense templates from recurring income.
type EntryType string

const (
	EntryTypeExpense EntryType = "expense"
	EntryTypeIncome  EntryType = "income"
)

// Frequency represents how often a recurring transaction fires.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// RecurringTransaction is a template that materializes an Expense or Income
// record each time it comes due.
type RecurringTransaction struct {
	Base
	UserID        string     `gorm:"not null;default:'default_user';index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Category      string     `gorm:"not null" json:"category"`
	Type          EntryType  `gorm:"not null" json:"type"`
	Frequency     Frequency  `gorm:"not null" json:"frequency"`
	DayOfMonth    int        `json:"day_of_month,omitempty"` // pins monthly templates to a day, clamped to shorter months
	NextDate      time.Time  `gorm:"not null;index" json:"next_date"`
	LastProcessed *time.Time `json:"last_processed,omitempty"`
	Currency      string     `gorm:"not null;default:'INR'" json:"currency"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
}
