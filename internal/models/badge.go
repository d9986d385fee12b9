package models

import "time"

// Badge is an earned milestone.
type Badge struct {
	Base
	UserID      string    `gorm:"not null;default:'default_user';index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedDate  time.Time `gorm:"not null" json:"earned_date"`
}
