package models

import "time"

// Activity records one resident's participation in an activity on a date.
type Activity struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ResidentID uint64    `gorm:"index;not null" json:"residentId"`
	Activity   string    `gorm:"size:255;not null" json:"activity"`
	Date       time.Time `gorm:"not null" json:"date"`
}

type ActivityInput struct {
	ResidentID uint64 `json:"residentId" binding:"required"`
	Activity   string `json:"activity" binding:"required"`
	Date       string `json:"date" binding:"required"`
}
