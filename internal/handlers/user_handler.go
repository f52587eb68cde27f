package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// GetUsers lists staff accounts. Password hashes are never serialized.
func (h *Handler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching users", nil)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a staff account by ID.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))
	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error deleting user", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "User deleted successfully", nil)
}

// GetUserActivity returns every user with their audit trail.
func (h *Handler) GetUserActivity(c *gin.Context) {
	var users []models.User
	if err := h.DB.Preload("Activity").Find(&users).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching activity", nil)
		return
	}
	c.JSON(http.StatusOK, users)
}
