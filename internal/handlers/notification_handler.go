package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/notify"
	"eldercare-backend/pkg/utils"
)

// GetNotifications returns the merged, date-sorted notice list: upcoming
// appointments plus birthdays within the next week. The frontend polls
// this at page load and every few minutes.
func (h *Handler) GetNotifications(c *gin.Context) {
	now := time.Now()

	appointments, err := h.upcomingAppointments(now, 7*24*time.Hour)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching notifications", nil)
		return
	}

	var residents []models.Resident
	if err := h.DB.Find(&residents).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching notifications", nil)
		return
	}

	byID := make(map[uint64]models.Resident, len(residents))
	for _, r := range residents {
		byID[r.ID] = r
	}

	notices := notify.Merge(
		notify.AppointmentNotices(appointments, byID, now),
		notify.BirthdayNotices(residents, now),
	)
	c.JSON(http.StatusOK, notices)
}
