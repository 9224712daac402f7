package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/utils"
)

// WebSocketAuthMiddleware validates the token passed as query parameter,
// browsers cannot set headers on a websocket handshake.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}
