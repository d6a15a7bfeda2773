package middleware

import (
	"log"

	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns panics into a generic 500 so nothing internal
// crosses the HTTP boundary unformatted.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("internal")
				utils.InternalError(c, "Internal Server Error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
