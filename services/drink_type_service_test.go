package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func TestValidateDrinkTypeInput(t *testing.T) {
	in := DrinkTypeInput{
		Name: "  Cold Brew ",
		Sizes: []SizeInput{
			{Name: " Small ", CaffeineMg: 155},
			{Name: "Large", CaffeineMg: 310},
		},
	}
	require.NoError(t, ValidateDrinkTypeInput(&in))
	assert.Equal(t, "Cold Brew", in.Name)
	assert.Equal(t, "Small", in.Sizes[0].Name)
}

func TestValidateDrinkTypeInputRejectsBadInput(t *testing.T) {
	err := ValidateDrinkTypeInput(&DrinkTypeInput{Name: " ", Sizes: []SizeInput{{Name: "S", CaffeineMg: 1}}})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateDrinkTypeInput(&DrinkTypeInput{Name: "Tea"})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateDrinkTypeInput(&DrinkTypeInput{Name: "Tea", Sizes: []SizeInput{{Name: "", CaffeineMg: 20}}})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateDrinkTypeInput(&DrinkTypeInput{Name: "Tea", Sizes: []SizeInput{{Name: "Cup", CaffeineMg: 0}}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDuplicateNameError(t *testing.T) {
	err := duplicateNameError("Cold Brew")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "Cold Brew")
}

func TestTranslateCreateError(t *testing.T) {
	// a unique-index violation is the same answer as the pre-check
	err := translateCreateError(gorm.ErrDuplicatedKey, "Cold Brew")
	assert.ErrorIs(t, err, ErrDuplicate)

	// anything else is a storage failure and passes through untouched
	boom := errors.New("connection reset")
	assert.Equal(t, boom, translateCreateError(boom, "Cold Brew"))
	assert.NotErrorIs(t, translateCreateError(boom, "Cold Brew"), ErrDuplicate)
}

func TestValidateDrinkTypeInputRejectsDuplicateSizeNames(t *testing.T) {
	err := ValidateDrinkTypeInput(&DrinkTypeInput{
		Name: "Tea",
		Sizes: []SizeInput{
			{Name: "Cup", CaffeineMg: 20},
			{Name: " Cup ", CaffeineMg: 40}, // same after trim
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
}
