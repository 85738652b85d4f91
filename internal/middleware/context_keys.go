package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// permissionsKey is the key used to store the caller's resolved
// permission set in the request context.
const permissionsKey = contextKey("permissions")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetPermissionsFromContext retrieves the caller's permission set resolved
// by the auth middleware. An absent set behaves as an empty one, so every
// gated operation denies access.
func GetPermissionsFromContext(c *gin.Context) domain.PermissionSet {
	perms, ok := c.Request.Context().Value(permissionsKey).(domain.PermissionSet)
	if !ok {
		return domain.PermissionSet{}
	}
	return perms
}
