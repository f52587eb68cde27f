package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// AddMealPlan creates a meal plan for a day.
func (h *Handler) AddMealPlan(c *gin.Context) {
	var input models.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	date, err := models.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}

	plan := models.MealPlan{
		ResidentName:        input.ResidentName,
		Date:                date,
		Meals:               input.Meals,
		Notes:               input.Notes,
		Caregiver:           input.Caregiver,
		Allergies:           input.Allergies,
		DietaryRestrictions: input.DietaryRestrictions,
	}
	if err := h.DB.Create(&plan).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error saving meal plan", nil)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetMealPlans lists meal plans, newest date first.
func (h *Handler) GetMealPlans(c *gin.Context) {
	var plans []models.MealPlan
	if err := h.DB.Order("date desc").Find(&plans).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching meal plans", nil)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// UpdateMealPlan replaces a meal plan.
func (h *Handler) UpdateMealPlan(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var plan models.MealPlan
	if err := h.DB.First(&plan, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Meal plan not found", nil)
		return
	}

	var input models.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}
	date, err := models.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}

	plan.ResidentName = input.ResidentName
	plan.Date = date
	plan.Meals = input.Meals
	plan.Notes = input.Notes
	plan.Caregiver = input.Caregiver
	plan.Allergies = input.Allergies
	plan.DietaryRestrictions = input.DietaryRestrictions

	if err := h.DB.Save(&plan).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error updating meal plan", nil)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteMealPlan removes a meal plan by ID.
func (h *Handler) DeleteMealPlan(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))
	if err := h.DB.Delete(&models.MealPlan{}, id).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error deleting meal plan", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Meal plan deleted", nil)
}
