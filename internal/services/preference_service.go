package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// preferenceService handles user preference storage.
type preferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(db *gorm.DB) PreferenceServicer {
	return &preferenceService{db: db}
}

// GetPreferences returns the user's preferences, falling back to defaults
// when none have been saved yet.
func (s *preferenceService) GetPreferences(userID string) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Preferences{
				UserID:          userID,
				PersonalityMode: models.PersonalityBalanced,
				Language:        "en",
				SpendingAlerts:  true,
			}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &prefs, nil
}

// SavePreferences upserts the user's preferences.
func (s *preferenceService) SavePreferences(
	userID string,
	mode models.PersonalityMode,
	language string,
	spendingAlerts bool,
	email string,
) (*models.Preferences, error) {
	var prefs models.Preferences
	err := s.db.Where("user_id = ?", userID).First(&prefs).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		prefs = models.Preferences{
			UserID:          userID,
			PersonalityMode: mode,
			Language:        language,
			SpendingAlerts:  spendingAlerts,
			Email:           email,
		}
		if err := s.db.Create(&prefs).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		updates := map[string]interface{}{
			"personality_mode": mode,
			"language":         language,
			"spending_alerts":  spendingAlerts,
			"email":            email,
		}
		if err := s.db.Model(&prefs).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &prefs, nil
}
