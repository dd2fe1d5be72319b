package controllers

import (
	"net/http"
	"strconv"

	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Hub *services.RealtimeHub
}

func NewEntryController(hub *services.RealtimeHub) *EntryController {
	return &EntryController{Hub: hub}
}

func (ec *EntryController) CreateEntry(c *gin.Context) {
	var input services.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	user, err := services.DefaultAuthService().CurrentUser(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	entry, err := services.DefaultEntryService().Create(user, input)
	if err != nil {
		serviceError(c, err)
		return
	}

	ec.Hub.BroadcastEntry(entry)
	c.JSON(http.StatusCreated, entry)
}

func (ec *EntryController) ListEntries(c *gin.Context) {
	entries, err := services.DefaultEntryService().List()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ec *EntryController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := services.DefaultEntryService().Delete(uint(id), c.GetUint("userID")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
