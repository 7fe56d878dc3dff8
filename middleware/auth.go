package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixhub/config"
	"fixhub/utils"
)

// AuthMiddleware verifies the caller's ID token against the hosted auth
// provider and stores the verified uid on the context. Token issuance,
// sessions, and user records all live on the provider's side.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AppConfig.AuthDisabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set("uid", token.UID)
		c.Next()
	}
}
