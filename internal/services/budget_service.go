package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a budget for a category in the current month.
// Only one budget per category and month is allowed.
func (s *budgetService) CreateBudget(userID, category string, monthlyLimit float64, currency string) (*models.Budget, error) {
	if currency == "" {
		currency = "INR"
	}
	month := analytics.MonthKey(time.Now())

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Month:        month,
		Currency:     currency,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns every budget for the user with its derived status.
// Spent amounts are recomputed from expense records on each call.
func (s *budgetService) GetUserBudgets(userID string) ([]analytics.BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("month DESC, category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses, err := s.userExpenses(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]analytics.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		statuses = append(statuses, analytics.StatusOfBudget(budget, expenses))
	}
	return statuses, nil
}

// GetBudgetStatus returns the current-month status for a single category.
func (s *budgetService) GetBudgetStatus(userID, category string) (*analytics.BudgetStatus, error) {
	month := analytics.MonthKey(time.Now())

	var budget models.Budget
	if err := s.db.Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses, err := s.userExpenses(userID)
	if err != nil {
		return nil, err
	}

	status := analytics.StatusOfBudget(budget, expenses)
	return &status, nil
}

// UpdateBudget changes a budget's monthly limit.
func (s *budgetService) UpdateBudget(userID, budgetID string, monthlyLimit float64) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&budget).Update("monthly_limit", monthlyLimit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

func (s *budgetService) userExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
