package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paisa/internal/services"
)

// BadgeHandler handles milestone badge requests.
type BadgeHandler struct {
	badgeService services.BadgeServicer
}

// NewBadgeHandler creates a new BadgeHandler.
func NewBadgeHandler(badgeService services.BadgeServicer) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

// GetBadges handles listing earned badges.
// @Summary     Get badges
// @Description Get all badges the user has earned
// @Tags        badges
// @Produce     json
// @Success     200 {object} map[string]interface{} "Badges"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /badges [get]
func (h *BadgeHandler) GetBadges(c *gin.Context) {
	badges, err := h.badgeService.GetUserBadges(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// CheckBadges handles evaluating and awarding new badges.
// @Summary     Check for new badges
// @Description Evaluate badge criteria against the ledger and award new badges
// @Tags        badges
// @Produce     json
// @Success     200 {object} services.BadgeCheckResult "Check result"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /badges/check [post]
func (h *BadgeHandler) CheckBadges(c *gin.Context) {
	result, err := h.badgeService.CheckAndAward(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
