package services

import (
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// insightService loads ledger collections and delegates all derivation to
// the analytics package.
type insightService struct {
	db        *gorm.DB
	trendDays int
}

// NewInsightService creates a new InsightServicer. trendDays controls the
// dashboard's daily trend window.
func NewInsightService(db *gorm.DB, trendDays int) InsightServicer {
	if trendDays <= 0 {
		trendDays = 30
	}
	return &insightService{db: db, trendDays: trendDays}
}

// GetDashboard builds the dashboard summary from the full ledger.
func (s *insightService) GetDashboard(userID string) (*analytics.DashboardSummary, error) {
	expenses, incomes, subscriptions, err := s.loadLedger(userID)
	if err != nil {
		return nil, err
	}

	summary := analytics.Summary(expenses, incomes, subscriptions, time.Now(), s.trendDays)
	return &summary, nil
}

// GetTrends returns daily spending totals for the trailing window.
func (s *insightService) GetTrends(userID string, days int) ([]analytics.TrendPoint, error) {
	if days <= 0 {
		days = s.trendDays
	}

	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, err
	}
	return analytics.DailyTrend(expenses, time.Now(), days), nil
}

// GetBehaviour reports weekday patterns, late-night ordering and alerts.
func (s *insightService) GetBehaviour(userID string) (*analytics.BehaviourReport, error) {
	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, err
	}

	report := analytics.Behaviour(expenses)
	return &report, nil
}

// GetMerchants groups spending by recognized merchant.
func (s *insightService) GetMerchants(userID string) ([]analytics.MerchantSummary, error) {
	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, err
	}
	return analytics.MerchantInsights(expenses), nil
}

// GetCategoryInsights reports monthly history and suggestions for a category.
func (s *insightService) GetCategoryInsights(userID, category string) (*analytics.CategoryInsights, error) {
	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, err
	}

	insights := analytics.InsightsForCategory(category, expenses)
	return &insights, nil
}

// GetRecommendations derives lifestyle suggestions from spending patterns.
func (s *insightService) GetRecommendations(userID string) ([]analytics.Recommendation, error) {
	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, err
	}

	var subscriptions []models.Subscription
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&subscriptions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return analytics.Recommendations(expenses, subscriptions), nil
}

func (s *insightService) loadExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

func (s *insightService) loadLedger(userID string) ([]models.Expense, []models.Income, []models.Subscription, error) {
	expenses, err := s.loadExpenses(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var subscriptions []models.Subscription
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&subscriptions).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expenses, incomes, subscriptions, nil
}
