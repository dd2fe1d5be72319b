package controllers

import (
	"errors"
	"net/http"

	"github.com/finnmprice/caffeine-counter/utils"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// UploadImage stores a drink picture and returns its public URL.
func UploadImage(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageBase64 is required"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "upload")
	if err != nil {
		if errors.Is(err, utils.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
