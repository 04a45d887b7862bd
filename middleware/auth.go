package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"madeasy/utils"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWTAuthMiddleware reads the bearer token and stores its subject as "userID".
// With required set, requests without a valid token are rejected; otherwise
// they pass through anonymously.
func JWTAuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Insufficient authorization",
					"code":  0,
				})
				return
			}
			c.Next()
			return
		}

		userID, err := utils.ExtractIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  1,
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}
