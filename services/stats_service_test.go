package services

import (
	"testing"
	"time"

	"github.com/finnmprice/caffeine-counter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userEntry(userID uint, name string, mg float64) models.CaffeineEntry {
	return models.CaffeineEntry{
		UserID:     userID,
		UserName:   name,
		UserAvatar: name + ".png",
		CaffeineMg: mg,
		Timestamp:  time.Now(),
	}
}

func TestSumEntries(t *testing.T) {
	stats := SumEntries([]models.CaffeineEntry{
		userEntry(1, "a", 95),
		userEntry(1, "a", 63),
		userEntry(2, "b", 40),
	})
	assert.Equal(t, 198.0, stats.Total)
	assert.Equal(t, 3, stats.Count)

	empty := SumEntries(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Count)
}

func TestBuildLeaderboardOrdering(t *testing.T) {
	rows := BuildLeaderboard([]models.CaffeineEntry{
		userEntry(1, "alice", 100),
		userEntry(2, "bob", 250),
		userEntry(1, "alice", 50),
		userEntry(3, "carol", 150),
	}, 50)

	require.Len(t, rows, 3)
	assert.Equal(t, uint(2), rows[0].UserID)
	assert.Equal(t, 250.0, rows[0].TotalCaffeine)
	assert.Equal(t, uint(1), rows[1].UserID)
	assert.Equal(t, 150.0, rows[1].TotalCaffeine)
	assert.Equal(t, 2, rows[1].EntryCount)
	assert.Equal(t, uint(3), rows[2].UserID)
}

func TestBuildLeaderboardTiesKeepFirstSeenOrder(t *testing.T) {
	rows := BuildLeaderboard([]models.CaffeineEntry{
		userEntry(7, "first", 100),
		userEntry(8, "second", 100),
	}, 50)

	require.Len(t, rows, 2)
	assert.Equal(t, uint(7), rows[0].UserID)
	assert.Equal(t, uint(8), rows[1].UserID)
}

func TestBuildLeaderboardCapped(t *testing.T) {
	var entries []models.CaffeineEntry
	for i := 1; i <= 60; i++ {
		entries = append(entries, userEntry(uint(i), "u", float64(i)))
	}
	rows := BuildLeaderboard(entries, 50)
	assert.Len(t, rows, 50)
	// highest total first
	assert.Equal(t, 60.0, rows[0].TotalCaffeine)
}

func TestBuildLeaderboardFirstSeenAvatar(t *testing.T) {
	a := userEntry(1, "alice", 10)
	a.UserAvatar = "old.png"
	b := userEntry(1, "alice", 20)
	b.UserAvatar = "new.png"

	rows := BuildLeaderboard([]models.CaffeineEntry{a, b}, 50)
	require.Len(t, rows, 1)
	assert.Equal(t, "old.png", rows[0].UserAvatar)
}

func TestLeaderboardWindow(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	since, all, err := LeaderboardWindow(PeriodWeek, now)
	require.NoError(t, err)
	assert.False(t, all)
	assert.Equal(t, now.AddDate(0, 0, -7), since)

	since, all, err = LeaderboardWindow(PeriodMonth, now)
	require.NoError(t, err)
	assert.False(t, all)
	assert.Equal(t, now.AddDate(0, -1, 0), since)

	since, all, err = LeaderboardWindow(PeriodYear, now)
	require.NoError(t, err)
	assert.False(t, all)
	assert.Equal(t, now.AddDate(-1, 0, 0), since)

	_, all, err = LeaderboardWindow(PeriodAll, now)
	require.NoError(t, err)
	assert.True(t, all)

	_, _, err = LeaderboardWindow(Period("decade"), now)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
