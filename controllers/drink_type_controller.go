package controllers

import (
	"net/http"
	"strconv"

	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

func ListDrinkTypes(c *gin.Context) {
	types, err := services.DefaultDrinkTypeService().List()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func CreateDrinkType(c *gin.Context) {
	var input services.DrinkTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := services.DefaultDrinkTypeService().Create(input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func DeleteDrinkType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := services.DefaultDrinkTypeService().Delete(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drink type deleted"})
}
