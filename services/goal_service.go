package services

import (
	"fmt"
	"math"
	"time"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"

	"gorm.io/gorm"
)

type GoalStatus struct {
	LimitMg       float64 `json:"limitMg"`
	ConsumedToday float64 `json:"consumedToday"`
	Percent       float64 `json:"percent"`
}

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

func DefaultGoalService() *GoalService { return NewGoalService(config.DB) }

// Status reports how far through their daily limit the user is.
func (s *GoalService) Status(userID uint) (*GoalStatus, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)
	var entries []models.CaffeineEntry
	if err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	consumed := SumEntries(entries).Total
	return &GoalStatus{
		LimitMg:       user.DailyLimitMg,
		ConsumedToday: consumed,
		Percent:       limitPercent(consumed, user.DailyLimitMg),
	}, nil
}

// UpdateLimit sets the daily caffeine budget.
func (s *GoalService) UpdateLimit(userID uint, limitMg float64) (*models.User, error) {
	if limitMg <= 0 {
		return nil, fmt.Errorf("%w: limitMg must be positive", ErrValidation)
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	user.DailyLimitMg = limitMg
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// limitPercent is for display, capped at 100.
func limitPercent(consumed, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	p := consumed / limit * 100
	if p > 100 {
		p = 100
	}
	return math.Round(p*100) / 100
}
