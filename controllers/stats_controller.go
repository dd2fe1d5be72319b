package controllers

import (
	"net/http"

	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

func TotalToday(c *gin.Context) {
	stats, err := services.DefaultStatsService().TodayTotal()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func TotalAll(c *gin.Context) {
	stats, err := services.DefaultStatsService().AllTimeTotal()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func Leaderboard(c *gin.Context) {
	period := services.Period(c.DefaultQuery("period", "week"))
	rows, err := services.DefaultStatsService().Leaderboard(period)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
