package services

import (
	"sort"
	"time"

	"github.com/finnmprice/caffeine-counter/config"
	"github.com/finnmprice/caffeine-counter/models"

	"gorm.io/gorm"
)

const leaderboardLimit = 50

type TotalStats struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type LeaderboardRow struct {
	UserID        uint    `json:"userId"`
	UserName      string  `json:"userName"`
	UserAvatar    string  `json:"userAvatar,omitempty"`
	TotalCaffeine float64 `json:"totalCaffeine"`
	EntryCount    int     `json:"entryCount"`
}

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

func DefaultStatsService() *StatsService { return NewStatsService(config.DB) }

// TodayTotal sums everything logged in [today 00:00, tomorrow 00:00).
func (s *StatsService) TodayTotal() (*TotalStats, error) {
	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)

	var entries []models.CaffeineEntry
	if err := s.db.Where("timestamp >= ? AND timestamp < ?", start, end).Find(&entries).Error; err != nil {
		return nil, err
	}
	return SumEntries(entries), nil
}

func (s *StatsService) AllTimeTotal() (*TotalStats, error) {
	var entries []models.CaffeineEntry
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, err
	}
	return SumEntries(entries), nil
}

// Leaderboard ranks users by caffeine consumed inside the period window.
func (s *StatsService) Leaderboard(period Period) ([]LeaderboardRow, error) {
	since, all, err := LeaderboardWindow(period, time.Now())
	if err != nil {
		return nil, err
	}

	q := s.db.Order("timestamp ASC")
	if !all {
		q = q.Where("timestamp >= ?", since)
	}
	var entries []models.CaffeineEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return BuildLeaderboard(entries, leaderboardLimit), nil
}

func SumEntries(entries []models.CaffeineEntry) *TotalStats {
	out := &TotalStats{}
	for _, e := range entries {
		out.Total += e.CaffeineMg
		out.Count++
	}
	return out
}

// LeaderboardWindow returns the inclusive lower bound for a period, or
// all=true when every entry counts.
func LeaderboardWindow(period Period, now time.Time) (since time.Time, all bool, err error) {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), false, nil
	case PeriodMonth:
		return now.AddDate(0, -1, 0), false, nil
	case PeriodYear:
		return now.AddDate(-1, 0, 0), false, nil
	case PeriodAll:
		return time.Time{}, true, nil
	default:
		return time.Time{}, false, ErrUnknownPeriod
	}
}

// BuildLeaderboard groups pre-filtered entries per user. Name and avatar
// come from the first entry seen; ties keep the order users first appear
// in the input.
func BuildLeaderboard(entries []models.CaffeineEntry, limit int) []LeaderboardRow {
	totals := make(map[uint]*LeaderboardRow)
	order := []uint{}
	for _, e := range entries {
		row, ok := totals[e.UserID]
		if !ok {
			row = &LeaderboardRow{
				UserID:     e.UserID,
				UserName:   e.UserName,
				UserAvatar: e.UserAvatar,
			}
			totals[e.UserID] = row
			order = append(order, e.UserID)
		}
		row.TotalCaffeine += e.CaffeineMg
		row.EntryCount++
	}

	rows := make([]LeaderboardRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *totals[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCaffeine > rows[j].TotalCaffeine
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
