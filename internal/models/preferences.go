package models

// PersonalityMode tunes the tone of insights shown to the user.
type PersonalityMode string

const (
	PersonalitySaver       PersonalityMode = "Saver"
	PersonalitySpender     PersonalityMode = "Spender"
	PersonalityMinimalist  PersonalityMode = "Minimalist"
	PersonalityAdventurous PersonalityMode = "Adventurous"
	PersonalityFoodie      PersonalityMode = "Foodie"
	PersonalityBalanced    PersonalityMode = "Balanced"
)

// Preferences is the closed set of per-user settings. Unknown keys are
// rejected at the binding layer rather than stored in an open map.
type Preferences struct {
	Base
	UserID          string          `gorm:"not null;default:'default_user';uniqueIndex" json:"user_id"`
	PersonalityMode PersonalityMode `gorm:"not null;default:'Balanced'" json:"personality_mode"`
	Language        string          `gorm:"not null;default:'en'" json:"language"` // en, hi, te, ta, kn
	SpendingAlerts  bool            `gorm:"default:true" json:"spending_alerts"`
	Email           string          `json:"email,omitempty"`
}
