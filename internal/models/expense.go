package models

import "time"

// Expense represents a single spending record.
type Expense struct {
	Base
	UserID      string    `gorm:"not null;default:'default_user';index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null;index" json:"category"`
	Description string    `json:"description"`
	Merchant    string    `json:"merchant,omitempty"`
	Currency    string    `gorm:"not null;default:'INR'" json:"currency"`
	IsRegret    bool      `gorm:"default:false" json:"is_regret"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
