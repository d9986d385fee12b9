package models

import "time"

// BillingCycle represents how often a subscription charges.
type BillingCycle string

const (
	BillingCycleDaily   BillingCycle = "daily"
	BillingCycleWeekly  BillingCycle = "weekly"
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// Subscription represents a recurring subscription charge.
type Subscription struct {
	Base
	UserID          string       `gorm:"not null;default:'default_user';index" json:"user_id"`
	Name            string       `gorm:"not null" json:"name"`
	Amount          float64      `gorm:"not null" json:"amount"`
	BillingCycle    BillingCycle `gorm:"not null" json:"billing_cycle"`
	Category        string       `gorm:"not null" json:"category"`
	Currency        string       `gorm:"not null;default:'INR'" json:"currency"`
	NextBillingDate time.Time    `json:"next_billing_date"`
	IsActive        bool         `gorm:"default:true" json:"is_active"`
}
