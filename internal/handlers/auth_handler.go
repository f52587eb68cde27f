package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// Register creates a staff account.
func (h *Handler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	var existing models.User
	err := h.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "User already exists", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to process password", nil)
		return
	}

	user := models.User{Username: input.Username, PasswordHash: hashed}
	if err := h.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "User registered", nil)
}

// Login checks credentials and issues a signed token.
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusBadRequest, false, "User not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	// Remember the device token so appointment notices can be pushed.
	if input.FCMToken != "" && input.FCMToken != user.FCMToken {
		h.DB.Model(&user).Update("fcm_token", input.FCMToken)
	}

	token, err := utils.GenerateToken(h.Cfg.JWTSecret, h.Cfg.TokenTTL, user.ID, user.Username)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
