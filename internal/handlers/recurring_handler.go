package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/services"
)

// RecurringHandler handles recurring transaction template requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringRequest represents the request payload for creating a template.
type CreateRecurringRequest struct {
	Name       string           `json:"name" binding:"required,min=1,max=200"`
	Amount     float64          `json:"amount" binding:"required,gt=0"`
	Category   string           `json:"category" binding:"required,min=1,max=100"`
	Type       models.EntryType `json:"type" binding:"required,entry_type"`
	Frequency  models.Frequency `json:"frequency" binding:"required,frequency"`
	DayOfMonth int              `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	Currency   string           `json:"currency" binding:"omitempty,iso4217"`
}

// CreateRecurring handles registering a recurring transaction template.
// @Summary     Create a recurring transaction
// @Description Register a template that materializes an expense or income when due
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       request body CreateRecurringRequest true "Template details"
// @Success     201 {object} models.RecurringTransaction "Template created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateRecurring(c *gin.Context) {
	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recurring, err := h.recurringService.CreateRecurring(
		getUserID(c), req.Name, req.Amount, req.Category, req.Type, req.Frequency, req.DayOfMonth, req.Currency,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recurring_transaction": recurring})
}

// GetRecurring handles listing templates.
// @Summary     Get recurring transactions
// @Description Get all recurring templates ordered by next due date
// @Tags        recurring
// @Produce     json
// @Success     200 {object} map[string]interface{} "Templates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	templates, err := h.recurringService.GetUserRecurring(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_transactions": templates})
}

// ProcessRecurring handles the on-demand due-template run.
// @Summary     Process due recurring transactions
// @Description Materialize every template that has come due
// @Tags        recurring
// @Produce     json
// @Success     200 {object} services.ProcessResult "Processing result"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/process [post]
func (h *RecurringHandler) ProcessRecurring(c *gin.Context) {
	result, err := h.recurringService.ProcessDue(getUserID(c), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteRecurring handles deleting a template.
// @Summary     Delete a recurring transaction
// @Description Delete a recurring template
// @Tags        recurring
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurring(getUserID(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring transaction deleted"})
}
