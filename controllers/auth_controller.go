package controllers

import (
	"net/http"

	"github.com/finnmprice/caffeine-counter/middlewares"
	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 72 * 60 * 60 // matches the token expiry

type GoogleLoginInput struct {
	Token string `json:"token" binding:"required"`
}

func GoogleLogin(c *gin.Context) {
	var input GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	user, token, err := services.DefaultAuthService().LoginWithGoogle(c.Request.Context(), input.Token)
	if err != nil {
		// Verification failures and storage failures both end the login;
		// the client only needs to know the token did not get it in.
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func CheckAuth(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := services.DefaultAuthService().CurrentUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
