package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/notify"
	"eldercare-backend/pkg/utils"
)

// ResidentRef is the resident slice joined into appointment responses.
type ResidentRef struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Room  string `json:"room"`
	Photo string `json:"photo"`
}

// CreatorRef identifies the user who created an appointment.
type CreatorRef struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// AppointmentView is an appointment with its references resolved at read
// time.
type AppointmentView struct {
	models.Appointment
	Resident *ResidentRef `json:"resident,omitempty"`
	Creator  *CreatorRef  `json:"creator,omitempty"`
}

// UpcomingAppointment adds the derived notification fields to a view.
type UpcomingAppointment struct {
	AppointmentView
	DaysLeft            int    `json:"daysLeft"`
	NotificationType    string `json:"notificationType"`
	NotificationMessage string `json:"notificationMessage"`
	IsToday             bool   `json:"isToday"`
	IsTomorrow          bool   `json:"isTomorrow"`
}

// composeAppointments joins resident and creator data into appointment
// records with two batched lookups.
func (h *Handler) composeAppointments(appointments []models.Appointment) ([]AppointmentView, error) {
	residentIDs := make([]uint64, 0, len(appointments))
	userIDs := make([]uint64, 0, len(appointments))
	for _, a := range appointments {
		residentIDs = append(residentIDs, a.ResidentID)
		userIDs = append(userIDs, a.CreatedBy)
	}

	var residents []models.Resident
	if len(residentIDs) > 0 {
		if err := h.DB.Where("id IN ?", residentIDs).Find(&residents).Error; err != nil {
			return nil, err
		}
	}
	var users []models.User
	if len(userIDs) > 0 {
		if err := h.DB.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, err
		}
	}

	residentByID := make(map[uint64]models.Resident, len(residents))
	for _, r := range residents {
		residentByID[r.ID] = r
	}
	userByID := make(map[uint64]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	views := make([]AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		view := AppointmentView{Appointment: a}
		if r, ok := residentByID[a.ResidentID]; ok {
			view.Resident = &ResidentRef{ID: r.ID, Name: r.Name, Room: r.Room, Photo: r.Photo}
		}
		if u, ok := userByID[a.CreatedBy]; ok {
			view.Creator = &CreatorRef{ID: u.ID, Username: u.Username}
		}
		views = append(views, view)
	}
	return views, nil
}

func (h *Handler) composeAppointment(a models.Appointment) (AppointmentView, error) {
	views, err := h.composeAppointments([]models.Appointment{a})
	if err != nil || len(views) == 0 {
		return AppointmentView{Appointment: a}, err
	}
	return views[0], nil
}

// AddAppointment validates and creates an appointment, records the action
// and pushes the derived notice to registered staff devices.
func (h *Handler) AddAppointment(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	date, err := input.Validate(time.Now(), true)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	var resident models.Resident
	if err := h.DB.First(&resident, input.ResidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Resident not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error creating appointment", nil)
		return
	}

	userID := currentUserID(c)
	var creator models.User
	if err := h.DB.First(&creator, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Creator user not found", nil)
		return
	}

	appointment := models.Appointment{CreatedBy: userID}
	input.Apply(&appointment, date)

	if err := h.DB.Create(&appointment).Error; err != nil {
		h.Log.WithError(err).Error("Failed to create appointment")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error creating appointment", nil)
		return
	}

	h.logUserActivity(userID, "Added an appointment")
	h.pushAppointmentNotice(appointment, resident.Name)

	view, err := h.composeAppointment(appointment)
	if err != nil {
		h.Log.WithError(err).Warn("Failed to compose appointment response")
	}
	c.JSON(http.StatusCreated, view)
}

// pushAppointmentNotice sends the derived notice to every staff device
// token, best-effort in the background.
func (h *Handler) pushAppointmentNotice(a models.Appointment, residentName string) {
	if h.Pusher == nil {
		return
	}

	message := notify.AppointmentMessage(a, residentName, notify.DaysUntil(time.Now(), a.Date))

	var users []models.User
	if err := h.DB.Where("fcm_token <> ''").Find(&users).Error; err != nil {
		h.Log.WithError(err).Warn("Failed to load push targets")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, u := range users {
			h.Pusher.Push(ctx, u.FCMToken, "Appointment scheduled", message, map[string]string{
				"appointmentId": strconv.FormatUint(a.ID, 10),
			})
		}
	}()
}

// GetAppointments lists all appointments with references resolved.
func (h *Handler) GetAppointments(c *gin.Context) {
	h.listAppointments(c, h.DB)
}

// GetDoctorAppointments lists appointments with type=doctor.
func (h *Handler) GetDoctorAppointments(c *gin.Context) {
	h.listAppointments(c, h.DB.Where("type = ?", models.AppointmentDoctor))
}

// GetFamilyAppointments lists appointments with type=family.
func (h *Handler) GetFamilyAppointments(c *gin.Context) {
	h.listAppointments(c, h.DB.Where("type = ?", models.AppointmentFamily))
}

func (h *Handler) listAppointments(c *gin.Context, query *gorm.DB) {
	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching appointments", nil)
		return
	}
	views, err := h.composeAppointments(appointments)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching appointments", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// upcomingAppointments fetches non-completed appointments in the next
// window, ascending by date.
func (h *Handler) upcomingAppointments(now time.Time, window time.Duration) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := h.DB.
		Where("date >= ? AND date <= ? AND completed = ?", now, now.Add(window), false).
		Order("date asc").
		Find(&appointments).Error
	return appointments, err
}

// GetUpcomingAppointments returns the next 7 days of open appointments,
// each enhanced with the derived notification fields.
func (h *Handler) GetUpcomingAppointments(c *gin.Context) {
	now := time.Now()
	appointments, err := h.upcomingAppointments(now, 7*24*time.Hour)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching upcoming appointments", nil)
		return
	}

	views, err := h.composeAppointments(appointments)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching upcoming appointments", nil)
		return
	}

	enhanced := make([]UpcomingAppointment, 0, len(views))
	for _, view := range views {
		daysLeft := notify.DaysUntil(now, view.Date)
		residentName := ""
		if view.Resident != nil {
			residentName = view.Resident.Name
		}
		enhanced = append(enhanced, UpcomingAppointment{
			AppointmentView:     view,
			DaysLeft:            daysLeft,
			NotificationType:    view.Type,
			NotificationMessage: notify.AppointmentMessage(view.Appointment, residentName, daysLeft),
			IsToday:             daysLeft == 0,
			IsTomorrow:          daysLeft == 1,
		})
	}
	c.JSON(http.StatusOK, enhanced)
}

// appointmentMatches reports whether the query appears, case-insensitively,
// in any searchable appointment field or in the resident's name.
func appointmentMatches(a models.Appointment, residentName, query string) bool {
	q := strings.ToLower(query)
	fields := []string{
		a.Purpose,
		a.DoctorName,
		a.HospitalName,
		a.RelativeName,
		a.Relation,
		a.Notes,
		residentName,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SearchAppointments free-text searches appointments and their residents.
func (h *Handler) SearchAppointments(c *gin.Context) {
	query := c.Param("query")

	var appointments []models.Appointment
	if err := h.DB.Find(&appointments).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error searching appointments", nil)
		return
	}
	views, err := h.composeAppointments(appointments)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error searching appointments", nil)
		return
	}

	matched := make([]AppointmentView, 0)
	for _, view := range views {
		residentName := ""
		if view.Resident != nil {
			residentName = view.Resident.Name
		}
		if appointmentMatches(view.Appointment, residentName, query) {
			matched = append(matched, view)
		}
	}
	c.JSON(http.StatusOK, matched)
}

// UpdateAppointment replaces an appointment. The future-date rule does not
// apply here so past appointments stay editable.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var appointment models.Appointment
	if err := h.DB.First(&appointment, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}
	date, err := input.Validate(time.Now(), false)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	var resident models.Resident
	if err := h.DB.First(&resident, input.ResidentID).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Resident not found", nil)
		return
	}

	input.Apply(&appointment, date)
	if err := h.DB.Save(&appointment).Error; err != nil {
		h.Log.WithError(err).Error("Failed to update appointment")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error updating appointment", nil)
		return
	}

	h.logUserActivity(currentUserID(c), "Updated an appointment")

	view, err := h.composeAppointment(appointment)
	if err != nil {
		h.Log.WithError(err).Warn("Failed to compose appointment response")
	}
	c.JSON(http.StatusOK, view)
}

// DeleteAppointment removes an appointment by ID.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))
	if err := h.DB.Delete(&models.Appointment{}, id).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error deleting appointment", nil)
		return
	}

	h.logUserActivity(currentUserID(c), "Deleted an appointment")
	utils.APIResponse(c, http.StatusOK, true, "Appointment deleted", nil)
}

// CompleteAppointment marks an appointment as done.
func (h *Handler) CompleteAppointment(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var appointment models.Appointment
	if err := h.DB.First(&appointment, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	appointment.Completed = true
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error completing appointment", nil)
		return
	}

	view, err := h.composeAppointment(appointment)
	if err != nil {
		h.Log.WithError(err).Warn("Failed to compose appointment response")
	}
	c.JSON(http.StatusOK, view)
}
