package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/utils"
)

// ReceiptLoggerMiddleware logs generation of receipts and reports.
func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("order_id")
		if target == "" {
			target = c.Request.URL.Path
		}
		utils.Info().Printf("Generating document for %s", target)

		c.Next()

		if c.Writer.Status() == 200 {
			utils.Info().Printf("Document generated for %s", target)
		} else {
			utils.Error().Printf("Failed to generate document for %s (status %d)", target, c.Writer.Status())
		}
	}
}
