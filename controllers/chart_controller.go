package controllers

import (
	"net/http"

	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

func CaffeineChart(c *gin.Context) {
	period := services.Period(c.DefaultQuery("period", "week"))
	data, err := services.DefaultChartService().CaffeineChart(period)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
