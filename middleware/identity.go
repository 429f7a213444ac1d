package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Identity lifts the opaque user id supplied by the external identity
// provider into the request context. The core never validates it; it is a
// credential handed over before any coordinator call is made.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}

// RequireIdentity aborts requests that arrive without a user id. Mutating
// endpoints need one to attribute the mutation.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "X-User-ID header is required"})
			return
		}
		c.Next()
	}
}

// UserID returns the caller's opaque user id, or "" when absent.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
