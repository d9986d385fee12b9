package services

import (
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	"paisa/internal/email"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// reportService builds weekly reports and hands them to the mail sender.
type reportService struct {
	db     *gorm.DB
	sender email.Sender
}

// NewReportService creates a new ReportServicer. sender may be nil when
// email delivery is not configured.
func NewReportService(db *gorm.DB, sender email.Sender) ReportServicer {
	return &reportService{db: db, sender: sender}
}

// GetWeeklyReport summarizes the trailing seven days of activity.
func (s *reportService) GetWeeklyReport(userID string) (*analytics.WeeklyReport, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report := analytics.Weekly(expenses, incomes, time.Now())
	return &report, nil
}

// EmailWeeklyReport builds the weekly report and emails it to the recipient.
// Falls back to the saved preference email when none is given.
func (s *reportService) EmailWeeklyReport(userID, recipient string) (*analytics.WeeklyReport, error) {
	if s.sender == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Email delivery is not configured")
	}

	if recipient == "" {
		var prefs models.Preferences
		if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err == nil {
			recipient = prefs.Email
		}
	}
	if recipient == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No recipient email address available")
	}

	report, err := s.GetWeeklyReport(userID)
	if err != nil {
		return nil, err
	}

	if err := s.sender.SendWeeklyReport(recipient, report); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return report, nil
}
