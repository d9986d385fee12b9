package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// subscriptionService handles subscription-related business logic.
type subscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(db *gorm.DB) SubscriptionServicer {
	return &subscriptionService{db: db}
}

// CreateSubscription registers a new recurring subscription.
func (s *subscriptionService) CreateSubscription(
	userID, name string,
	amount float64,
	cycle models.BillingCycle,
	category, currency string,
	nextBillingDate time.Time,
) (*models.Subscription, error) {
	if currency == "" {
		currency = "INR"
	}
	if nextBillingDate.IsZero() {
		nextBillingDate = nextBillingFromCycle(cycle, time.Now())
	}

	subscription := &models.Subscription{
		UserID:          userID,
		Name:            name,
		Amount:          amount,
		BillingCycle:    cycle,
		Category:        category,
		Currency:        currency,
		NextBillingDate: nextBillingDate,
		IsActive:        true,
	}

	if err := s.db.Create(subscription).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return subscription, nil
}

// GetUserSubscriptions returns the user's subscriptions, optionally active only.
func (s *subscriptionService) GetUserSubscriptions(userID string, activeOnly bool) ([]models.Subscription, error) {
	base := s.db.Where("user_id = ?", userID)
	if activeOnly {
		base = base.Where("is_active = ?", true)
	}

	var subscriptions []models.Subscription
	if err := base.Order("created_at DESC").Find(&subscriptions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subscriptions, nil
}

// CancelSubscription marks a subscription inactive without deleting its history.
func (s *subscriptionService) CancelSubscription(userID, subscriptionID string) (*models.Subscription, error) {
	subscription, err := s.getByID(userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(subscription).Update("is_active", false).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subscription, nil
}

// DeleteSubscription soft-deletes a subscription.
func (s *subscriptionService) DeleteSubscription(userID, subscriptionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", subscriptionID, userID).Delete(&models.Subscription{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

// GetTotals reports the monthly-equivalent and yearly cost of active subscriptions.
func (s *subscriptionService) GetTotals(userID string) (*SubscriptionTotals, error) {
	subscriptions, err := s.GetUserSubscriptions(userID, true)
	if err != nil {
		return nil, err
	}

	monthly := analytics.MonthlySubscriptionCost(subscriptions)
	return &SubscriptionTotals{
		MonthlyTotal: monthly,
		YearlyTotal:  monthly * 12,
	}, nil
}

func (s *subscriptionService) getByID(userID, subscriptionID string) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := s.db.Where("id = ? AND user_id = ?", subscriptionID, userID).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &subscription, nil
}

func nextBillingFromCycle(cycle models.BillingCycle, from time.Time) time.Time {
	switch cycle {
	case models.BillingCycleDaily:
		return from.AddDate(0, 0, 1)
	case models.BillingCycleWeekly:
		return from.AddDate(0, 0, 7)
	case models.BillingCycleYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
