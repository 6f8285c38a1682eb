package middleware

import (
	"net/http"
	"strings"

	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the bearer token and resolves the member
// behind it. On success the context carries "userID" and "role".
func JWTAuthUserMiddleware(repo recordsRepo.RecordRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The cached session record is authoritative when available;
		// otherwise fall back to the stored profile.
		role := ""
		if cache := utils.GetAuthCacheClient(); cache != nil {
			if session, err := utils.GetAuthSession(cache, utils.HashToken(tokenString)); err == nil {
				role = session.Role
			}
		}
		if role == "" {
			rec, ok, err := repo.Get(c.Request.Context(), database.CollectionUsers, userID)
			if err != nil || !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown member"})
				return
			}
			role, _ = rec["role"].(string)
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Set("token", tokenString)
		c.Next()
	}
}
