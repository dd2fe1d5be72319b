package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"

	"gorm.io/gorm"
)

const entryListLimit = 50

type EntryInput struct {
	DrinkName         string  `json:"drinkName"`
	SizeName          string  `json:"sizeName"`
	CaffeineMg        float64 `json:"caffeineMg"`
	CustomDescription string  `json:"customDescription"`
	IsCustomDrink     bool    `json:"isCustomDrink"`
}

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

func DefaultEntryService() *EntryService { return NewEntryService(config.DB) }

// ValidateEntryInput trims the names and checks the create invariants.
func ValidateEntryInput(in *EntryInput) error {
	in.DrinkName = strings.TrimSpace(in.DrinkName)
	in.SizeName = strings.TrimSpace(in.SizeName)
	if in.DrinkName == "" {
		return fmt.Errorf("%w: drinkName is required", ErrValidation)
	}
	if in.SizeName == "" {
		return fmt.Errorf("%w: sizeName is required", ErrValidation)
	}
	if in.CaffeineMg <= 0 {
		return fmt.Errorf("%w: caffeineMg must be positive", ErrValidation)
	}
	return nil
}

// Create persists an entry for the session user. The server owns fullName,
// the timestamp and the user snapshot fields.
func (s *EntryService) Create(user *models.User, in EntryInput) (*models.CaffeineEntry, error) {
	if err := ValidateEntryInput(&in); err != nil {
		return nil, err
	}

	entry := models.CaffeineEntry{
		DrinkName:         in.DrinkName,
		SizeName:          in.SizeName,
		FullName:          strings.TrimSpace(in.SizeName + " " + in.DrinkName),
		CaffeineMg:        in.CaffeineMg,
		CustomDescription: in.CustomDescription,
		IsCustomDrink:     in.IsCustomDrink,
		Timestamp:         time.Now(),
		UserID:            user.ID,
		UserName:          user.Name,
		UserAvatar:        user.Picture,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the newest entries, capped at 50.
func (s *EntryService) List() ([]models.CaffeineEntry, error) {
	var entries []models.CaffeineEntry
	err := s.db.Order("timestamp DESC").Limit(entryListLimit).Find(&entries).Error
	return entries, err
}

// AuthorizeEntryDelete gates deletion on ownership: only the user who
// logged an entry may remove it.
func AuthorizeEntryDelete(entry *models.CaffeineEntry, userID uint) error {
	if entry.UserID != userID {
		return ErrForbidden
	}
	return nil
}

// Delete removes an entry. Only its creator may do so.
func (s *EntryService) Delete(id uint, userID uint) error {
	var entry models.CaffeineEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := AuthorizeEntryDelete(&entry, userID); err != nil {
		return err
	}
	// entries are removed for real, not flagged
	return s.db.Unscoped().Delete(&entry).Error
}
