package middleware

import (
	"strings"

	"gonotes/services"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts and verifies the bearer token. A missing token
// is a 401, a present-but-invalid token a 403. The distinction is part of
// the API contract.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Token not found")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.ValidateToken(tokenString)
		if err != nil {
			utils.TrackError("auth")
			utils.Forbidden(c, "Invalid token")
			c.Abort()
			return
		}

		// Identity for downstream handlers
		c.Set("user_id", userID)
		c.Next()
	}
}
