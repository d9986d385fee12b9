package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/services"
)

// SubscriptionHandler handles subscription-related requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CreateSubscriptionRequest represents the request payload for creating a subscription.
type CreateSubscriptionRequest struct {
	Name            string              `json:"name" binding:"required,min=1,max=200"`
	Amount          float64             `json:"amount" binding:"required,gt=0"`
	BillingCycle    models.BillingCycle `json:"billing_cycle" binding:"required,billing_cycle"`
	Category        string              `json:"category" binding:"required,min=1,max=100"`
	Currency        string              `json:"currency" binding:"omitempty,iso4217"`
	NextBillingDate *time.Time          `json:"next_billing_date"`
}

// CreateSubscription handles registering a new subscription.
// @Summary     Create a subscription
// @Description Register a recurring subscription charge
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} models.Subscription "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var nextBillingDate time.Time
	if req.NextBillingDate != nil {
		nextBillingDate = *req.NextBillingDate
	}

	subscription, err := h.subscriptionService.CreateSubscription(
		getUserID(c), req.Name, req.Amount, req.BillingCycle, req.Category, req.Currency, nextBillingDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscription": subscription})
}

// GetSubscriptions handles listing subscriptions.
// @Summary     Get subscriptions
// @Description Get all subscriptions, optionally active only
// @Tags        subscriptions
// @Produce     json
// @Param       active_only query bool false "Return active subscriptions only"
// @Success     200 {object} map[string]interface{} "Subscriptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	subscriptions, err := h.subscriptionService.GetUserSubscriptions(getUserID(c), activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

// GetTotals handles reporting aggregate subscription cost.
// @Summary     Get subscription totals
// @Description Get the monthly-equivalent and yearly cost of active subscriptions
// @Tags        subscriptions
// @Produce     json
// @Success     200 {object} services.SubscriptionTotals "Totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/total [get]
func (h *SubscriptionHandler) GetTotals(c *gin.Context) {
	totals, err := h.subscriptionService.GetTotals(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// CancelSubscription handles marking a subscription inactive.
// @Summary     Cancel a subscription
// @Description Mark a subscription inactive while keeping its history
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} models.Subscription "Subscription cancelled"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	subscription, err := h.subscriptionService.CancelSubscription(getUserID(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// DeleteSubscription handles deleting a subscription.
// @Summary     Delete a subscription
// @Description Delete a subscription record
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.subscriptionService.DeleteSubscription(getUserID(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
}
