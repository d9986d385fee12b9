package models

import "time"

// PricePoint is one observation in a tracker's price history.
type PricePoint struct {
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

// PriceTracker watches a product's price over time against an optional
// target price.
type PriceTracker struct {
	Base
	UserID       string       `gorm:"not null;default:'default_user';index" json:"user_id"`
	ProductName  string       `gorm:"not null" json:"product_name"`
	CurrentPrice float64      `gorm:"not null" json:"current_price"`
	TargetPrice  *float64     `json:"target_price,omitempty"`
	URL          string       `json:"url,omitempty"`
	Currency     string       `gorm:"not null;default:'INR'" json:"currency"`
	PriceHistory []PricePoint `gorm:"serializer:json" json:"price_history"`
}
