package controllers

import (
	"net/http"

	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

func GetGoal(c *gin.Context) {
	status, err := services.DefaultGoalService().Status(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

type GoalInput struct {
	LimitMg float64 `json:"limitMg"`
}

func UpdateGoal(c *gin.Context) {
	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.DefaultGoalService().UpdateLimit(c.GetUint("userID"), input.LimitMg)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailyLimitMg": user.DailyLimitMg})
}
