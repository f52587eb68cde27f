package models

import (
	"time"
)

// User is a staff account. The password hash never leaves the server.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FCMToken     string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Append-only audit trail of actions performed by this user.
	Activity []UserActivity `gorm:"foreignKey:UserID" json:"activity,omitempty"`
}

// UserActivity is one entry in a user's audit trail.
type UserActivity struct {
	ID        uint64    `gorm:"primaryKey" json:"-"`
	UserID    uint64    `gorm:"index;not null" json:"-"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"`
}
