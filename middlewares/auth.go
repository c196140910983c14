package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/utils"
)

// AuthMiddleware verifies the bearer token, checks it has not been revoked
// and resolves it to exactly one principal. With requiredRoles it also
// enforces the role.
func AuthMiddleware(secret string, tokens *repository.TokenRepository, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		active, err := tokens.IsActive(claims.ID)
		if err != nil || !active {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token revoked"})
			c.Abort()
			return
		}

		setPrincipal(c, claims)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func setPrincipal(c *gin.Context, claims *utils.Claims) {
	c.Set("principal", entity.Principal{
		Kind: entity.PrincipalKind(claims.Role),
		ID:   claims.UserID,
	})
	c.Set("userId", claims.UserID)
	c.Set("role", claims.Role)
	c.Set("jti", claims.ID)
}
