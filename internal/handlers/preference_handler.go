package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/services"
)

// PreferenceHandler handles user preference requests.
type PreferenceHandler struct {
	preferenceService services.PreferenceServicer
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService services.PreferenceServicer) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// SavePreferencesRequest represents the request payload for saving preferences.
// The set of settings is closed; unknown keys are rejected at binding.
type SavePreferencesRequest struct {
	PersonalityMode models.PersonalityMode `json:"personality_mode" binding:"required,personality_mode"`
	Language        string                 `json:"language" binding:"required,language_code"`
	SpendingAlerts  bool                   `json:"spending_alerts"`
	Email           string                 `json:"email" binding:"omitempty,email"`
}

// GetPreferences handles reading preferences.
// @Summary     Get preferences
// @Description Get the saved preferences, or defaults when none are saved
// @Tags        preferences
// @Produce     json
// @Success     200 {object} models.Preferences "Preferences"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferenceService.GetPreferences(getUserID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// SavePreferences handles upserting preferences.
// @Summary     Save preferences
// @Description Create or replace the saved preferences
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Param       request body SavePreferencesRequest true "Preferences"
// @Success     200 {object} models.Preferences "Preferences saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [put]
func (h *PreferenceHandler) SavePreferences(c *gin.Context) {
	var req SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prefs, err := h.preferenceService.SavePreferences(
		getUserID(c), req.PersonalityMode, req.Language, req.SpendingAlerts, req.Email,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
