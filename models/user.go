package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	GoogleID     string    `gorm:"uniqueIndex;not null" json:"googleId"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture"`
	DailyLimitMg float64   `gorm:"default:400" json:"dailyLimitMg"` // FDA guidance for healthy adults
	LastLoginAt  time.Time `json:"lastLoginAt"`
}
