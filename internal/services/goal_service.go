package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// goalService handles savings goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(
	userID, name, category string,
	targetAmount, currentAmount float64,
	targetDate time.Time,
	currency string,
) (*models.Goal, error) {
	if currency == "" {
		currency = "INR"
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		Category:      category,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Currency:      currency,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns the user's goals with derived progress.
func (s *goalService) GetUserGoals(userID string) ([]GoalView, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("target_date ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, GoalView{
			Goal:            goal,
			ProgressPercent: analytics.GoalProgressPercent(goal.CurrentAmount, goal.TargetAmount),
		})
	}
	return views, nil
}

// UpdateGoalAmount sets the amount saved toward a goal so far.
func (s *goalService) UpdateGoalAmount(userID, goalID string, currentAmount float64) (*models.Goal, error) {
	goal, err := s.getByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(goal).Update("current_amount", currentAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// GetGoalPace returns the saving pace required to reach a goal by its target date.
func (s *goalService) GetGoalPace(userID, goalID string) (*analytics.GoalPace, error) {
	goal, err := s.getByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	pace := analytics.PaceForGoal(*goal, time.Now())
	return &pace, nil
}

func (s *goalService) getByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}
