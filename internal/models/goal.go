package models

import "time"

// Goal represents a savings goal with a target amount and date.
type Goal struct {
	Base
	UserID        string    `gorm:"not null;default:'default_user';index" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `json:"category"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"not null;default:0" json:"current_amount"`
	TargetDate    time.Time `gorm:"not null" json:"target_date"`
	Currency      string    `gorm:"not null;default:'INR'" json:"currency"`
}
