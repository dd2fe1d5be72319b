package models

import "gorm.io/gorm"

// DefaultDrinkImage is stored when a drink type is created without a picture.
const DefaultDrinkImage = "/assets/drink-placeholder.svg"

// A catalog drink with its size variants. Deletion is a soft flag so the
// API can tell "never existed" (404) apart from "already removed" (400);
// every read path excludes deleted rows.
type DrinkType struct {
	gorm.Model
	Name     string      `gorm:"uniqueIndex;not null" json:"name"`
	ImageURL string      `json:"imageUrl"`
	Deleted  bool        `gorm:"default:false" json:"-"`
	Sizes    []DrinkSize `gorm:"constraint:OnDelete:CASCADE" json:"sizes"`
}

type DrinkSize struct {
	gorm.Model
	DrinkTypeID uint    `gorm:"index;not null" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	CaffeineMg  float64 `gorm:"not null" json:"caffeineMg"`
	Position    int     `json:"-"` // preserves the order sizes were submitted in
}
