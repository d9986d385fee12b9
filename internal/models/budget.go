package models

// Budget represents a per-category monthly spending limit.
//
// The amount spent against a budget is intentionally not a column: it is
// recomputed from Expense records on every read so it can never drift.
type Budget struct {
	Base
	UserID       string  `gorm:"not null;default:'default_user';uniqueIndex:idx_budget_cat_month" json:"user_id"`
	Category     string  `gorm:"not null;uniqueIndex:idx_budget_cat_month" json:"category"`
	MonthlyLimit float64 `gorm:"not null" json:"monthly_limit"`
	Month        string  `gorm:"not null;uniqueIndex:idx_budget_cat_month" json:"month"` // YYYY-MM
	Currency     string  `gorm:"not null;default:'INR'" json:"currency"`
}
