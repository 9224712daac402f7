package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders dipasang di semua route, termasuk /ws dan /metrics
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Tablet dapur & kasir tidak boleh meng-cache data keuangan
		c.Header("Cache-Control", "no-store")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
