package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// AddStaffFeedback stores a staff feedback entry.
func (h *Handler) AddStaffFeedback(c *gin.Context) {
	var input models.StaffFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	feedback := models.StaffFeedback{
		StaffName:        input.StaffName,
		ResidentInvolved: input.ResidentInvolved,
		Rating:           input.Rating,
		Experience:       input.Experience,
		Disagreement:     input.Disagreement,
		Suggestion:       input.Suggestion,
		Complaint:        input.Complaint,
	}
	if err := h.DB.Create(&feedback).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error submitting feedback", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Feedback submitted successfully", nil)
}

// GetStaffFeedback lists all feedback entries.
func (h *Handler) GetStaffFeedback(c *gin.Context) {
	var feedbacks []models.StaffFeedback
	if err := h.DB.Find(&feedbacks).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching feedback", nil)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}
