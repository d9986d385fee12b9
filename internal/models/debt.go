package models

import "time"

// DebtStatus represents the repayment state of a debt.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "active"
	DebtStatusPaid   DebtStatus = "paid"
)

// Debt represents a loan amortized with a fixed monthly installment.
//
// EMIAmount, TotalInterest and TotalPayable are derived once at creation
// from principal, rate and tenure. AmountPaid accumulates recorded payments;
// remaining balance and percent paid are always derived, never stored.
type Debt struct {
	Base
	UserID          string     `gorm:"not null;default:'default_user';index" json:"user_id"`
	Name            string     `gorm:"not null" json:"name"`
	PrincipalAmount float64    `gorm:"not null" json:"principal_amount"`
	InterestRate    float64    `gorm:"not null;default:0" json:"interest_rate"` // annual, percent
	TenureMonths    int        `gorm:"not null" json:"tenure_months"`
	StartDate       time.Time  `gorm:"not null" json:"start_date"`
	EMIAmount       float64    `json:"emi_amount"`
	TotalInterest   float64    `json:"total_interest"`
	TotalPayable    float64    `json:"total_payable"`
	AmountPaid      float64    `gorm:"not null;default:0" json:"amount_paid"`
	Currency        string     `gorm:"not null;default:'INR'" json:"currency"`
	Status          DebtStatus `gorm:"not null;default:'active'" json:"status"`
}
