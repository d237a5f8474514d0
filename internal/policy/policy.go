// Package policy holds the role and ownership checks guarding mutations.
// Kept resolver-based so the store stays the only package talking to the
// database.
package policy

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirepath/hirepath/internal/auth"
)

// Ownable is implemented by resources that carry an owning user id.
type Ownable interface {
	GetUserID() string
}

// RoleResolver returns the role of a user, false when unknown.
type RoleResolver func(ctx context.Context, userID string) (string, bool)

// RequireRole aborts with 403 unless the authenticated user has the role.
// Runs after auth.RequireAuth, so a missing context user is a 401.
func RequireRole(resolve RoleResolver, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := auth.UserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		got, ok := resolve(c.Request.Context(), uid)
		if !ok || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// Owns reports whether userID owns the resource. A nil resource denies:
// callers must load the record before checking.
func Owns(userID string, resource any) bool {
	if resource == nil {
		return false
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return ownable.GetUserID() == userID
}
