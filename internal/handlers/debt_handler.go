package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/services"
)

// DebtHandler handles debt and EMI requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for recording a debt.
type CreateDebtRequest struct {
	Name            string     `json:"name" binding:"required,min=1,max=200"`
	PrincipalAmount float64    `json:"principal_amount" binding:"required,gt=0"`
	InterestRate    float64    `json:"interest_rate" binding:"gte=0"`
	TenureMonths    int        `json:"tenure_months" binding:"required,gt=0"`
	StartDate       *time.Time `json:"start_date"`
	Currency        string     `json:"currency" binding:"omitempty,iso4217"`
}

// RecordPaymentRequest represents the request payload for a debt payment.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateDebtStatusRequest represents the request payload for setting debt status.
type UpdateDebtStatusRequest struct {
	Status models.DebtStatus `json:"status" binding:"required,debt_status"`
}

// CreateDebt handles recording a new debt.
// @Summary     Create a debt
// @Description Record a debt; the EMI schedule is derived at creation
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var startDate time.Time
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	debt, err := h.debtService.CreateDebt(
		getUserID(c), req.Name, req.PrincipalAmount, req.InterestRate, req.TenureMonths, startDate, req.Currency,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing debts with repayment progress.
// @Summary     Get debts
// @Description Get all debts with remaining balance and percent paid
// @Tags        debts
// @Produce     json
// @Success     200 {object} map[string]interface{} "Debts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	debts, err := h.debtService.GetUserDebts(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// RecordPayment handles recording a payment toward a debt.
// @Summary     Record a debt payment
// @Description Add a payment; paying the full amount marks the debt paid
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Debt ID"
// @Param       request body RecordPaymentRequest true "Payment amount"
// @Success     200 {object} models.Debt "Debt updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/payments [post]
func (h *DebtHandler) RecordPayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.RecordPayment(getUserID(c), id, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebtStatus handles setting a debt's status.
// @Summary     Update debt status
// @Description Mark a debt active or paid
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Debt ID"
// @Param       request body UpdateDebtStatusRequest true "New status"
// @Success     200 {object} models.Debt "Debt updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/status [put]
func (h *DebtHandler) UpdateDebtStatus(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.UpdateDebtStatus(getUserID(c), id, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt.
// @Summary     Delete a debt
// @Description Delete a debt record
// @Tags        debts
// @Produce     json
// @Param       id path string true "Debt ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(getUserID(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted"})
}
