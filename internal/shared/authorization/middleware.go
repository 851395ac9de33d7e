package authorization

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the gin context key the auth middleware stores the
// caller's role under.
const ContextKeyUserRole = "user_role"

// RequireRoles gates a route to the given role allow-list. It must run after
// the auth middleware: a missing role means the token was never verified.
func RequireRoles(allowed ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := UserRole(c.GetString(ContextKeyUserRole))
		for _, role := range allowed {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{
			"success": false,
			"error": gin.H{
				"type":    "forbidden",
				"message": "insufficient role",
			},
		})
		c.Abort()
	}
}

// RequireStaff gates a route to TECH and ADMIN callers.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(RoleTech, RoleAdmin)
}

// RequireAdmin gates a route to ADMIN callers.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin)
}
