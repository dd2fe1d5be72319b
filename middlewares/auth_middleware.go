// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/finnmprice/caffeine-counter/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "caffeine_session"

// sessionToken pulls the token from the session cookie, falling back to a
// Bearer header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid session and stores the
// authenticated user id in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		userID, err := utils.ParseSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
