package services

import (
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// badgeService handles milestone badge awards.
type badgeService struct {
	db *gorm.DB
}

// NewBadgeService creates a new BadgeServicer.
func NewBadgeService(db *gorm.DB) BadgeServicer {
	return &badgeService{db: db}
}

// GetUserBadges returns the badges the user has earned so far.
func (s *badgeService) GetUserBadges(userID string) ([]models.Badge, error) {
	var badges []models.Badge
	if err := s.db.Where("user_id = ?", userID).Order("earned_date DESC").Find(&badges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return badges, nil
}

// CheckAndAward evaluates badge criteria against the current ledger and
// persists any newly earned badges. Awarding is idempotent per badge name.
func (s *badgeService) CheckAndAward(userID string) (*BadgeCheckResult, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	existing, err := s.GetUserBadges(userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(existing))
	for _, b := range existing {
		owned[b.Name] = true
	}

	earned := analytics.EvaluateBadges(expenses, incomes, owned)

	now := time.Now()
	newBadges := make([]models.Badge, 0, len(earned))
	for _, spec := range earned {
		badge := models.Badge{
			UserID:      userID,
			Name:        spec.Name,
			Description: spec.Description,
			Icon:        spec.Icon,
			EarnedDate:  now,
		}
		if err := s.db.Create(&badge).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		newBadges = append(newBadges, badge)
	}

	return &BadgeCheckResult{
		NewBadges:   newBadges,
		TotalBadges: len(existing) + len(newBadges),
	}, nil
}
