package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// bindResidentData parses and validates the "data" JSON part of the
// multipart request.
func bindResidentData(c *gin.Context) (*models.ResidentInput, bool) {
	raw := c.PostForm("data")
	if raw == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Missing resident data", nil)
		return nil, false
	}

	var input models.ResidentInput
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid resident data", err.Error())
		return nil, false
	}
	if input.Name == "" || input.DOB == "" || input.Room == "" || input.EmergencyContact == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Missing required fields", nil)
		return nil, false
	}
	switch input.Gender {
	case "male", "female", "other":
	default:
		utils.APIResponse(c, http.StatusBadRequest, false, "Gender must be male, female or other", nil)
		return nil, false
	}
	return &input, true
}

// AddResident creates a resident from multipart data plus optional
// document and photo files.
func (h *Handler) AddResident(c *gin.Context) {
	input, ok := bindResidentData(c)
	if !ok {
		return
	}

	document, err := utils.SaveUpload(c, utils.UploadFieldDocument, h.Cfg.UploadDir, h.Cfg.MaxUploadSize)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}
	photo, err := utils.SaveUpload(c, utils.UploadFieldPhoto, h.Cfg.UploadDir, h.Cfg.MaxUploadSize)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	admission := input.AdmissionDate
	if admission == "" {
		admission = time.Now().Format("2006-01-02")
	}

	resident := models.Resident{
		Name:             input.Name,
		DOB:              input.DOB,
		Gender:           input.Gender,
		AdmissionDate:    admission,
		EmergencyContact: input.EmergencyContact,
		History:          input.History,
		Room:             input.Room,
		Dietary:          input.Dietary,
		Diseases:         models.PruneDiseases(input.Diseases),
		Allergies:        input.Allergies,
		Document:         document,
		Photo:            photo,
	}

	if err := h.DB.Create(&resident).Error; err != nil {
		h.Log.WithError(err).Error("Failed to add resident")
		c.String(http.StatusInternalServerError, "Error adding resident")
		return
	}

	h.logUserActivity(currentUserID(c), "Added a resident")
	c.String(http.StatusOK, "Resident added")
}

// GetResidents lists all residents.
func (h *Handler) GetResidents(c *gin.Context) {
	var residents []models.Resident
	if err := h.DB.Find(&residents).Error; err != nil {
		c.String(http.StatusInternalServerError, "Error fetching residents")
		return
	}
	c.JSON(http.StatusOK, residents)
}

// UpdateResident replaces a resident record. Newly uploaded files take the
// place of the old ones, which are removed best-effort.
func (h *Handler) UpdateResident(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var existing models.Resident
	if err := h.DB.First(&existing, id).Error; err != nil {
		c.String(http.StatusNotFound, "Resident not found")
		return
	}

	input, ok := bindResidentData(c)
	if !ok {
		return
	}

	document, err := utils.SaveUpload(c, utils.UploadFieldDocument, h.Cfg.UploadDir, h.Cfg.MaxUploadSize)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}
	photo, err := utils.SaveUpload(c, utils.UploadFieldPhoto, h.Cfg.UploadDir, h.Cfg.MaxUploadSize)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	// A replaced file is cleaned up after the new one is in place. Cleanup
	// failure does not roll anything back.
	if document != "" {
		utils.RemoveStoredFile(h.Log, h.Cfg.UploadDir, existing.Document)
	} else {
		document = input.ExistingDocument
	}
	if photo != "" {
		utils.RemoveStoredFile(h.Log, h.Cfg.UploadDir, existing.Photo)
	} else {
		photo = input.ExistingPhoto
	}

	existing.Name = input.Name
	existing.DOB = input.DOB
	existing.Gender = input.Gender
	if input.AdmissionDate != "" {
		existing.AdmissionDate = input.AdmissionDate
	}
	existing.EmergencyContact = input.EmergencyContact
	existing.History = input.History
	existing.Room = input.Room
	existing.Dietary = input.Dietary
	existing.Diseases = models.PruneDiseases(input.Diseases)
	existing.Allergies = input.Allergies
	existing.Document = document
	existing.Photo = photo

	if err := h.DB.Save(&existing).Error; err != nil {
		h.Log.WithError(err).Error("Failed to update resident")
		c.String(http.StatusInternalServerError, "Error updating resident")
		return
	}

	h.logUserActivity(currentUserID(c), "Updated a resident")
	c.String(http.StatusOK, "Resident updated")
}

// DeleteResident removes a resident, their uploaded files and their
// activity records. The steps are independent; there is no rollback.
func (h *Handler) DeleteResident(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var resident models.Resident
	if err := h.DB.First(&resident, id).Error; err != nil {
		c.String(http.StatusNotFound, "Resident not found")
		return
	}

	utils.RemoveStoredFile(h.Log, h.Cfg.UploadDir, resident.Document)
	utils.RemoveStoredFile(h.Log, h.Cfg.UploadDir, resident.Photo)

	if err := h.DB.Where("resident_id = ?", resident.ID).Delete(&models.Activity{}).Error; err != nil {
		h.Log.WithError(err).Warn("Failed to delete resident activities")
	}

	if err := h.DB.Delete(&resident).Error; err != nil {
		h.Log.WithError(err).Error("Failed to delete resident")
		c.String(http.StatusInternalServerError, "Error deleting resident")
		return
	}

	h.logUserActivity(currentUserID(c), "Deleted a resident")
	c.String(http.StatusOK, "Resident deleted")
}
