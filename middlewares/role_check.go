package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/utils"
)

// RoleCheck only lets the given roles through. It must run after AuthMiddleware.
func RoleCheck(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if !utils.CanAccess(role, allowed...) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access not allowed", role))
			c.Abort()
			return
		}

		c.Next()
	}
}
