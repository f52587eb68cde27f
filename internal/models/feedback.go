package models

import "time"

// StaffFeedback is a feedback entry submitted by a staff member.
type StaffFeedback struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	StaffName        string    `gorm:"size:100;not null" json:"staffName"`
	ResidentInvolved string    `gorm:"size:100" json:"residentInvolved"`
	Rating           int       `json:"rating"`
	Experience       string    `gorm:"type:text" json:"experience"`
	Disagreement     string    `gorm:"type:text" json:"disagreement"`
	Suggestion       string    `gorm:"type:text" json:"suggestion"`
	Complaint        string    `gorm:"type:text" json:"complaint"`
	SubmittedAt      time.Time `gorm:"autoCreateTime" json:"submittedAt"`
}

type StaffFeedbackInput struct {
	StaffName        string `json:"staffName" binding:"required"`
	ResidentInvolved string `json:"residentInvolved"`
	Rating           int    `json:"rating" binding:"gte=0,lte=5"`
	Experience       string `json:"experience"`
	Disagreement     string `json:"disagreement"`
	Suggestion       string `json:"suggestion"`
	Complaint        string `json:"complaint"`
}
