package middleware

import (
	"net/http"

	"hotelier/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware restricts access to callers carrying the admin role
// claim. It must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRoleKey)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied: Insufficient permissions.",
			})
			return
		}
		c.Next()
	}
}
