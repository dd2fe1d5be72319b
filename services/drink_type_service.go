package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"
	"github.com/finnmprice/caffeine-counter/utils"

	"gorm.io/gorm"
)

type SizeInput struct {
	Name       string  `json:"name"`
	CaffeineMg float64 `json:"caffeineMg"`
}

type DrinkTypeInput struct {
	Name     string      `json:"name"`
	ImageURL string      `json:"imageUrl"`
	Sizes    []SizeInput `json:"sizes"`
}

type DrinkTypeService struct{ db *gorm.DB }

func NewDrinkTypeService(db *gorm.DB) *DrinkTypeService { return &DrinkTypeService{db: db} }

func DefaultDrinkTypeService() *DrinkTypeService { return NewDrinkTypeService(config.DB) }

// ValidateDrinkTypeInput trims names and enforces the catalog invariants:
// non-empty name, at least one size, positive caffeine and unique size
// names within the type.
func ValidateDrinkTypeInput(in *DrinkTypeInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(in.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrValidation)
	}
	seen := map[string]bool{}
	for i := range in.Sizes {
		in.Sizes[i].Name = strings.TrimSpace(in.Sizes[i].Name)
		if in.Sizes[i].Name == "" {
			return fmt.Errorf("%w: size name is required", ErrValidation)
		}
		if in.Sizes[i].CaffeineMg <= 0 {
			return fmt.Errorf("%w: size caffeineMg must be positive", ErrValidation)
		}
		if seen[in.Sizes[i].Name] {
			return fmt.Errorf("%w: duplicate size name %q", ErrValidation, in.Sizes[i].Name)
		}
		seen[in.Sizes[i].Name] = true
	}
	return nil
}

// duplicateNameError is the "already exists" answer, shared by the
// friendly pre-check and the unique-index violation path so concurrent
// creators get the same 400 either way.
func duplicateNameError(name string) error {
	return fmt.Errorf("%w: drink type %q", ErrDuplicate, name)
}

// translateCreateError maps a unique-index violation onto the duplicate
// answer; anything else is a storage failure and passes through.
func translateCreateError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateNameError(name)
	}
	return err
}

// Create adds a drink type. Name uniqueness is ultimately enforced by the
// unique index; a constraint violation maps to the same "already exists"
// answer as the friendly pre-check.
func (s *DrinkTypeService) Create(in DrinkTypeInput) (*models.DrinkType, error) {
	if err := ValidateDrinkTypeInput(&in); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.DrinkType{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, duplicateNameError(in.Name)
	}

	imageURL := in.ImageURL
	if strings.HasPrefix(imageURL, "data:") {
		url, err := utils.UploadBase64ImageToS3(imageURL, "type/"+slug(in.Name))
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	if imageURL == "" {
		imageURL = models.DefaultDrinkImage
	}

	t := models.DrinkType{Name: in.Name, ImageURL: imageURL}
	for i, sz := range in.Sizes {
		t.Sizes = append(t.Sizes, models.DrinkSize{
			Name:       sz.Name,
			CaffeineMg: sz.CaffeineMg,
			Position:   i,
		})
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, translateCreateError(err, in.Name)
	}
	return &t, nil
}

// List returns active drink types sorted by name, sizes in submit order.
func (s *DrinkTypeService) List() ([]models.DrinkType, error) {
	var types []models.DrinkType
	err := s.db.
		Where("deleted = ?", false).
		Order("name ASC").
		Preload("Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&types).Error
	return types, err
}

// Delete soft-deletes a drink type. A second delete is a client error, not
// a 404: the row still exists.
func (s *DrinkTypeService) Delete(id uint) error {
	var t models.DrinkType
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if t.Deleted {
		return fmt.Errorf("%w: drink type already deleted", ErrValidation)
	}
	t.Deleted = true
	return s.db.Save(&t).Error
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}
