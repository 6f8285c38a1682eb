package middleware

import (
	"net/http"

	"gymrat/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware rejects requests whose resolved role is not admin.
// Must run after JWTAuthUserMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
