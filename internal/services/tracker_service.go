package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// trackerService handles price tracker business logic.
type trackerService struct {
	db *gorm.DB
}

// NewTrackerService creates a new TrackerServicer.
func NewTrackerService(db *gorm.DB) TrackerServicer {
	return &trackerService{db: db}
}

// CreateTracker starts watching a product's price. The initial price seeds
// the history.
func (s *trackerService) CreateTracker(
	userID, productName string,
	currentPrice float64,
	targetPrice *float64,
	url, currency string,
) (*models.PriceTracker, error) {
	if currency == "" {
		currency = "INR"
	}

	tracker := &models.PriceTracker{
		UserID:       userID,
		ProductName:  productName,
		CurrentPrice: currentPrice,
		TargetPrice:  targetPrice,
		URL:          url,
		Currency:     currency,
		PriceHistory: []models.PricePoint{{Price: currentPrice, Date: time.Now()}},
	}

	if err := s.db.Create(tracker).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tracker, nil
}

// GetUserTrackers returns the user's price trackers.
func (s *trackerService) GetUserTrackers(userID string) ([]models.PriceTracker, error) {
	var trackers []models.PriceTracker
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&trackers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trackers, nil
}

// UpdatePrice records a new price observation and appends it to the history.
func (s *trackerService) UpdatePrice(userID, trackerID string, newPrice float64) (*models.PriceTracker, error) {
	var tracker models.PriceTracker
	if err := s.db.Where("id = ? AND user_id = ?", trackerID, userID).First(&tracker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	tracker.CurrentPrice = newPrice
	tracker.PriceHistory = append(tracker.PriceHistory, models.PricePoint{Price: newPrice, Date: time.Now()})

	if err := s.db.Save(&tracker).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tracker, nil
}
