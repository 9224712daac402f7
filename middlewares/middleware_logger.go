package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/bar-app/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.Info().WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  status,
			"latency": latency,
			"ip":      c.ClientIP(),
			"path":    path,
		})
		if role, ok := c.Get("role"); ok {
			entry = entry.WithField("role", role)
		}
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}
