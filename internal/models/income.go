package models

import "time"

// Income represents a single income ledger entry. Dashboard totals use this
// ledger rather than estimating income from spending.
type Income struct {
	Base
	UserID   string    `gorm:"not null;default:'default_user';index" json:"user_id"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Source   string    `gorm:"not null" json:"source"`
	Currency string    `gorm:"not null;default:'INR'" json:"currency"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}
