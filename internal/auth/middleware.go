package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware attaches the session's user id to the request context when a
// valid cookie is present. It never rejects.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := ParseSession(c.Request); ok {
			c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), uid))
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless a verified user id is in context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := UserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if !Verify(c.Request.Context(), uid) {
			// Stale session for a deleted user: clear and reject.
			ClearSession(c.Writer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
