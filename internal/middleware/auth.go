package middleware

import (
	"net/http"
	"strings"

	"newsdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

const UserKey = "username"

// AuthRequired validates the bearer token and stashes the username in the
// request context. A missing header and a bad token fail differently: 401 for
// no token, 403 for an invalid one.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token provided"})
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "Invalid token!"})
			return
		}

		c.Set(UserKey, claims.Username)
		c.Next()
	}
}
