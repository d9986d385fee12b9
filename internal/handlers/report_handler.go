package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/services"
)

// ReportHandler handles periodic report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// EmailReportRequest represents the request payload for emailing a report.
type EmailReportRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// GetWeeklyReport handles the weekly report endpoint.
// @Summary     Get weekly report
// @Description Summarize the trailing seven days of spending and income
// @Tags        reports
// @Produce     json
// @Success     200 {object} analytics.WeeklyReport "Weekly report"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/weekly [get]
func (h *ReportHandler) GetWeeklyReport(c *gin.Context) {
	report, err := h.reportService.GetWeeklyReport(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// EmailWeeklyReport handles emailing the weekly report.
// @Summary     Email weekly report
// @Description Build the weekly report and email it; falls back to the saved preference email
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body EmailReportRequest false "Recipient override"
// @Success     200 {object} analytics.WeeklyReport "Report sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/weekly/email [post]
func (h *ReportHandler) EmailWeeklyReport(c *gin.Context) {
	var req EmailReportRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	report, err := h.reportService.EmailWeeklyReport(getUserID(c), req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weekly report sent", "report": report})
}
