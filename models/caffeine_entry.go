package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged drink. Entries are immutable once created; the only write
// after insert is a delete by the owning user.
type CaffeineEntry struct {
	gorm.Model
	DrinkName         string    `gorm:"not null" json:"drinkName"`
	SizeName          string    `gorm:"not null" json:"sizeName"`
	FullName          string    `gorm:"not null" json:"fullName"` // "{sizeName} {drinkName}"
	CaffeineMg        float64   `gorm:"not null" json:"caffeineMg"`
	CustomDescription string    `json:"customDescription"`
	IsCustomDrink     bool      `json:"isCustomDrink"`
	Timestamp         time.Time `gorm:"index;not null" json:"timestamp"`
	UserID            uint      `gorm:"index;not null" json:"userId"`
	UserName          string    `json:"userName"`
	UserAvatar        string    `json:"userAvatar,omitempty"`
}
