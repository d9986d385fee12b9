package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// debtService handles debt and EMI business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt records a debt and derives its amortization schedule once.
func (s *debtService) CreateDebt(
	userID, name string,
	principal, annualRatePercent float64,
	tenureMonths int,
	startDate time.Time,
	currency string,
) (*models.Debt, error) {
	if currency == "" {
		currency = "INR"
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	schedule := analytics.ComputeEMI(principal, annualRatePercent, tenureMonths)

	debt := &models.Debt{
		UserID:          userID,
		Name:            name,
		PrincipalAmount: principal,
		InterestRate:    annualRatePercent,
		TenureMonths:    tenureMonths,
		StartDate:       startDate,
		EMIAmount:       schedule.EMI,
		TotalInterest:   schedule.TotalInterest,
		TotalPayable:    schedule.TotalPayable,
		Currency:        currency,
		Status:          models.DebtStatusActive,
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return debt, nil
}

// GetUserDebts returns the user's debts with derived repayment progress.
func (s *debtService) GetUserDebts(userID string) ([]DebtView, error) {
	var debts []models.Debt
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]DebtView, 0, len(debts))
	for _, debt := range debts {
		progress := analytics.ProgressOfDebt(debt.TotalPayable, debt.AmountPaid)
		views = append(views, DebtView{
			Debt:            debt,
			RemainingAmount: progress.RemainingAmount,
			PercentPaid:     progress.PercentPaid,
		})
	}
	return views, nil
}

// RecordPayment adds a payment toward a debt. Paying off the full payable
// amount flips the debt to paid.
func (s *debtService) RecordPayment(userID, debtID string, amount float64) (*models.Debt, error) {
	debt, err := s.getByID(userID, debtID)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Payment amount must be positive")
	}

	updates := map[string]interface{}{
		"amount_paid": debt.AmountPaid + amount,
	}
	if debt.AmountPaid+amount >= debt.TotalPayable {
		updates["status"] = models.DebtStatusPaid
	}

	if err := s.db.Model(debt).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// UpdateDebtStatus sets a debt's status directly.
func (s *debtService) UpdateDebtStatus(userID, debtID string, status models.DebtStatus) (*models.Debt, error) {
	debt, err := s.getByID(userID, debtID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(debt).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// DeleteDebt soft-deletes a debt.
func (s *debtService) DeleteDebt(userID, debtID string) error {
	result := s.db.Where("id = ? AND user_id = ?", debtID, userID).Delete(&models.Debt{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDebtNotFound
	}
	return nil
}

func (s *debtService) getByID(userID, debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}
