package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/notify"
	"eldercare-backend/pkg/utils"
)

// ResidentBrief is the resident slice joined into activity listings.
type ResidentBrief struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// ActivityView is an activity record with its resident joined in.
type ActivityView struct {
	models.Activity
	Resident *ResidentBrief `json:"resident,omitempty"`
}

// AddActivity records a resident's participation in an activity.
func (h *Handler) AddActivity(c *gin.Context) {
	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	date, err := models.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}

	activity := models.Activity{
		ResidentID: input.ResidentID,
		Activity:   input.Activity,
		Date:       date,
	}
	if err := h.DB.Create(&activity).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error recording activity", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Activity participation recorded", nil)
}

// GetActivities lists all activity records with resident name and age.
func (h *Handler) GetActivities(c *gin.Context) {
	var activities []models.Activity
	if err := h.DB.Find(&activities).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching activities", nil)
		return
	}

	residents, err := h.residentsByID()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching activities", nil)
		return
	}

	now := time.Now()
	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		view := ActivityView{Activity: a}
		if r, ok := residents[a.ResidentID]; ok {
			view.Resident = &ResidentBrief{ID: r.ID, Name: r.Name, Age: notify.Age(r.DOB, now)}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// GetActivitySummary groups a month's activity records per resident.
func (h *Handler) GetActivitySummary(c *gin.Context) {
	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil || month < 1 || month > 12 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Month and year are required", nil)
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var activities []models.Activity
	if err := h.DB.Where("date >= ? AND date < ?", start, end).Find(&activities).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching summary", nil)
		return
	}

	residents, err := h.residentsByID()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching summary", nil)
		return
	}

	c.JSON(http.StatusOK, notify.Summarize(activities, residents, time.Now()))
}

// residentsByID loads all residents keyed by ID for read-time joins.
func (h *Handler) residentsByID() (map[uint64]models.Resident, error) {
	var residents []models.Resident
	if err := h.DB.Find(&residents).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]models.Resident, len(residents))
	for _, r := range residents {
		byID[r.ID] = r
	}
	return byID, nil
}
