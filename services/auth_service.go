package services

import (
	"context"
	"errors"
	"time"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"
	"github.com/finnmprice/caffeine-counter/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func DefaultAuthService() *AuthService { return NewAuthService(config.DB) }

// LoginWithGoogle verifies the ID token, upserts the user from the identity
// claims and mints a session token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*models.User, string, error) {
	claims, err := utils.VerifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	var user models.User
	err = s.db.Where("google_id = ?", claims.GoogleID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			GoogleID:     claims.GoogleID,
			Email:        claims.Email,
			Name:         claims.Name,
			Picture:      claims.Picture,
			DailyLimitMg: 400,
			LastLoginAt:  time.Now(),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	default:
		// Profile claims can change between logins; keep them fresh.
		user.Email = claims.Email
		user.Name = claims.Name
		user.Picture = claims.Picture
		user.LastLoginAt = time.Now()
		if err := s.db.Save(&user).Error; err != nil {
			return nil, "", err
		}
	}

	token, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
