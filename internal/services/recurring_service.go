package services

import (
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// recurringService handles recurring transaction templates.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// CreateRecurring registers a template. Its first due date is the next
// occurrence after now; monthly templates with a pinned day land on that day.
func (s *recurringService) CreateRecurring(
	userID, name string,
	amount float64,
	category string,
	entryType models.EntryType,
	frequency models.Frequency,
	dayOfMonth int,
	currency string,
) (*models.RecurringTransaction, error) {
	if currency == "" {
		currency = "INR"
	}

	now := time.Now()
	var nextDate time.Time
	if frequency == models.FrequencyMonthly && dayOfMonth > 0 {
		nextDate = analytics.NextMonthlyOnDay(now, dayOfMonth)
	} else {
		nextDate = analytics.NextOccurrence(frequency, now)
	}

	recurring := &models.RecurringTransaction{
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		Category:   category,
		Type:       entryType,
		Frequency:  frequency,
		DayOfMonth: dayOfMonth,
		NextDate:   nextDate,
		Currency:   currency,
		IsActive:   true,
	}

	if err := s.db.Create(recurring).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return recurring, nil
}

// GetUserRecurring returns the user's recurring templates.
func (s *recurringService) GetUserRecurring(userID string) ([]models.RecurringTransaction, error) {
	var templates []models.RecurringTransaction
	if err := s.db.Where("user_id = ?", userID).Order("next_date ASC").Find(&templates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return templates, nil
}

// DeleteRecurring soft-deletes a recurring template.
func (s *recurringService) DeleteRecurring(userID, recurringID string) error {
	result := s.db.Where("id = ? AND user_id = ?", recurringID, userID).Delete(&models.RecurringTransaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRecurringNotFound
	}
	return nil
}

// ProcessDue materializes every due template belonging to the user.
func (s *recurringService) ProcessDue(userID string, now time.Time) (*ProcessResult, error) {
	return s.process(s.db.Where("user_id = ?", userID), now)
}

// ProcessAllDue materializes every due template in the store. The scheduler
// calls this once a day.
func (s *recurringService) ProcessAllDue(now time.Time) (*ProcessResult, error) {
	return s.process(s.db, now)
}

func (s *recurringService) process(scope *gorm.DB, now time.Time) (*ProcessResult, error) {
	var due []models.RecurringTransaction
	if err := scope.Where("is_active = ? AND next_date <= ?", true, now).Find(&due).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &ProcessResult{Processed: []string{}}
	for i := range due {
		template := &due[i]
		if err := s.materialize(template, now); err != nil {
			return nil, err
		}
		result.Processed = append(result.Processed, template.Name)
	}
	result.Count = len(result.Processed)
	return result, nil
}

// materialize creates the concrete record for one due template and advances
// its schedule past now inside a single transaction. A template that fell
// far behind still fires only once per run.
func (s *recurringService) materialize(template *models.RecurringTransaction, now time.Time) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		switch template.Type {
		case models.EntryTypeIncome:
			income := &models.Income{
				UserID:   template.UserID,
				Amount:   template.Amount,
				Source:   template.Name + " (Auto-added)",
				Currency: template.Currency,
				Date:     now,
			}
			if err := tx.Create(income).Error; err != nil {
				return err
			}
		default:
			expense := &models.Expense{
				UserID:      template.UserID,
				Amount:      template.Amount,
				Category:    template.Category,
				Description: template.Name + " (Auto-added)",
				Currency:    template.Currency,
				Date:        now,
			}
			if err := tx.Create(expense).Error; err != nil {
				return err
			}
		}

		next := template.NextDate
		for !next.After(now) {
			var advanced time.Time
			if template.Frequency == models.FrequencyMonthly && template.DayOfMonth > 0 {
				advanced = analytics.NextMonthlyOnDay(next, template.DayOfMonth)
			} else {
				advanced = analytics.NextOccurrence(template.Frequency, next)
			}
			if !advanced.After(next) {
				// unrecognized frequency, park the template a month out
				advanced = next.AddDate(0, 1, 0)
			}
			next = advanced
		}

		return tx.Model(template).Updates(map[string]interface{}{
			"last_processed": now,
			"next_date":      next,
		}).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
