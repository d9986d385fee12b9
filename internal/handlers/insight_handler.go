package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/services"
)

// InsightHandler handles analytics and insight requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetDashboard handles the dashboard summary endpoint.
// @Summary     Get dashboard summary
// @Description Get totals, category breakdown, top expenses and daily trend
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.DashboardSummary "Dashboard summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/dashboard [get]
func (h *InsightHandler) GetDashboard(c *gin.Context) {
	summary, err := h.insightService.GetDashboard(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrends handles the daily spending trend endpoint.
// @Summary     Get spending trends
// @Description Get daily spending totals for a trailing window
// @Tags        analytics
// @Produce     json
// @Param       days query int false "Window size in days (default 30)"
// @Success     200 {object} map[string]interface{} "Trend points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trends [get]
func (h *InsightHandler) GetTrends(c *gin.Context) {
	days := 0
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be a positive integer"))
			return
		}
		days = parsed
	}

	points, err := h.insightService.GetTrends(getUserID(c), days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": points})
}

// GetBehaviour handles the behaviour report endpoint.
// @Summary     Get behaviour insights
// @Description Get weekday spending, late-night ordering and behaviour alerts
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.BehaviourReport "Behaviour report"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/behaviour [get]
func (h *InsightHandler) GetBehaviour(c *gin.Context) {
	report, err := h.insightService.GetBehaviour(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetMerchants handles the merchant insight endpoint.
// @Summary     Get merchant insights
// @Description Get spending grouped by recognized merchant
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string]interface{} "Merchant summaries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/merchants [get]
func (h *InsightHandler) GetMerchants(c *gin.Context) {
	merchants, err := h.insightService.GetMerchants(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"merchants": merchants})
}

// GetCategoryInsights handles the per-category insight endpoint.
// @Summary     Get category insights
// @Description Get monthly history, best and worst months for a category
// @Tags        analytics
// @Produce     json
// @Param       category path string true "Category name"
// @Success     200 {object} analytics.CategoryInsights "Category insights"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories/{category} [get]
func (h *InsightHandler) GetCategoryInsights(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required"))
		return
	}

	insights, err := h.insightService.GetCategoryInsights(getUserID(c), category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetRecommendations handles the recommendation endpoint.
// @Summary     Get recommendations
// @Description Get lifestyle suggestions derived from spending patterns
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string]interface{} "Recommendations"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/recommendations [get]
func (h *InsightHandler) GetRecommendations(c *gin.Context) {
	recommendations, err := h.insightService.GetRecommendations(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
