package models

import "time"

// Meals holds the three meal slots of a day's plan.
type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// MealPlan is a day's meal plan. ResidentName is a plain string, not a
// reference; meal plans survive resident deletion.
type MealPlan struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	ResidentName        string    `gorm:"size:100;not null" json:"residentName"`
	Date                time.Time `gorm:"not null" json:"date"`
	Meals               Meals     `gorm:"serializer:json" json:"meals"`
	Notes               string    `gorm:"type:text" json:"notes"`
	Caregiver           string    `gorm:"size:100" json:"caregiver"`
	Allergies           []string  `gorm:"serializer:json" json:"allergies"`
	DietaryRestrictions []string  `gorm:"serializer:json" json:"dietaryRestrictions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type MealPlanInput struct {
	ResidentName        string   `json:"residentName" binding:"required"`
	Date                string   `json:"date" binding:"required"`
	Meals               Meals    `json:"meals"`
	Notes               string   `json:"notes"`
	Caregiver           string   `json:"caregiver"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}
