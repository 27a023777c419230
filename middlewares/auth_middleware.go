package middlewares

import (
	"net/http"
	"strings"

	"nutriassist/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's id and username on the context for handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided.",
			})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, username, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("userID", userID)
		c.Set("username", username)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is present but
// lets anonymous requests through. Used by the public debug search route.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if userID, username, err := utils.ParseJWT(tokenString); err == nil {
				c.Set("userID", userID)
				c.Set("username", username)
			}
		}
		c.Next()
	}
}
