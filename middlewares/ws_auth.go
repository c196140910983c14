package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/utils"
)

// WSAuthMiddleware accepts the token from the query string (browsers cannot
// set headers on websocket upgrades) or from the Authorization header.
func WSAuthMiddleware(secret string, tokens *repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		active, err := tokens.IsActive(claims.ID)
		if err != nil || !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token revoked"})
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}
