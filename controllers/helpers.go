package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/finnmprice/caffeine-counter/services"
	"github.com/finnmprice/caffeine-counter/utils"

	"github.com/gin-gonic/gin"
)

// serviceError maps service sentinels onto the HTTP taxonomy. Anything
// unrecognized is a storage/upstream failure: log the detail, answer
// generically.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrUnknownPeriod),
		errors.Is(err, utils.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only delete your own entries"})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
