package middlewares

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/utils"
	"golang.org/x/time/rate"
)

const maxPaymentMethodLen = 32

// PaymentRateLimiter throttles table closing so a double tap on the register
// does not queue a burst of requests.
func PaymentRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 10)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "Please wait before closing another table",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ValidatePaymentRequest reads the optional payment method from the body and
// stores it normalized under "payment_method". An empty body is allowed.
func ValidatePaymentRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			PaymentMethod string `json:"paymentMethod"`
		}

		if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
			c.Abort()
			return
		}

		method := strings.ToLower(strings.TrimSpace(request.PaymentMethod))
		if len(method) > maxPaymentMethodLen {
			utils.RespondError(c, http.StatusBadRequest, errors.New("payment method too long"))
			c.Abort()
			return
		}

		c.Set("payment_method", method)
		c.Next()
	}
}

// LogPaymentRequest logs table closing requests
func LogPaymentRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		method, _ := c.Get("payment_method")
		utils.Info().Printf(
			"Payment Request - Table: %s, Method: %v, Status: %d, Duration: %v",
			c.Param("id"), method, c.Writer.Status(), time.Since(start),
		)
	}
}
