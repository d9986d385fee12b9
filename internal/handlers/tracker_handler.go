package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/services"
)

// TrackerHandler handles price tracker requests.
type TrackerHandler struct {
	trackerService services.TrackerServicer
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService services.TrackerServicer) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// CreateTrackerRequest represents the request payload for creating a tracker.
type CreateTrackerRequest struct {
	ProductName  string   `json:"product_name" binding:"required,min=1,max=200"`
	CurrentPrice float64  `json:"current_price" binding:"required,gt=0"`
	TargetPrice  *float64 `json:"target_price" binding:"omitempty,gt=0"`
	URL          string   `json:"url" binding:"omitempty,url"`
	Currency     string   `json:"currency" binding:"omitempty,iso4217"`
}

// UpdatePriceRequest represents the request payload for a price observation.
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreateTracker handles starting a price watch.
// @Summary     Create a price tracker
// @Description Start watching a product's price over time
// @Tags        trackers
// @Accept      json
// @Produce     json
// @Param       request body CreateTrackerRequest true "Tracker details"
// @Success     201 {object} models.PriceTracker "Tracker created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trackers [post]
func (h *TrackerHandler) CreateTracker(c *gin.Context) {
	var req CreateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tracker, err := h.trackerService.CreateTracker(
		getUserID(c), req.ProductName, req.CurrentPrice, req.TargetPrice, req.URL, req.Currency,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tracker": tracker})
}

// GetTrackers handles listing price trackers.
// @Summary     Get price trackers
// @Description Get all price trackers with their history
// @Tags        trackers
// @Produce     json
// @Success     200 {object} map[string]interface{} "Trackers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trackers [get]
func (h *TrackerHandler) GetTrackers(c *gin.Context) {
	trackers, err := h.trackerService.GetUserTrackers(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trackers": trackers})
}

// UpdatePrice handles recording a new price observation.
// @Summary     Update tracked price
// @Description Record a new price observation for a tracker
// @Tags        trackers
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Tracker ID"
// @Param       request body UpdatePriceRequest true "New price"
// @Success     200 {object} models.PriceTracker "Tracker updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Tracker not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trackers/{id}/price [put]
func (h *TrackerHandler) UpdatePrice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tracker, err := h.trackerService.UpdatePrice(getUserID(c), id, req.Price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracker": tracker})
}
