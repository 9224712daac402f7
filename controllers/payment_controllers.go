package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type PaymentController struct {
	Bar *services.Bar
}

func NewPaymentController(bar *services.Bar) *PaymentController {
	return &PaymentController{Bar: bar}
}

// SendToPayment -> meja minta tagihan
func (pc *PaymentController) SendToPayment(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	table, err := pc.Bar.SendTableToPayment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventTableUpdate, gin.H{
		"table": table,
		"stats": pc.Bar.DailyStats(),
	})
	utils.Info().Printf("Table %d sent to payment, total %s", table.ID, utils.FormatCurrency(table.CurrentOrder.Total))
	utils.RespondJSON(c, http.StatusOK, "Table sent to payment", table)
}

// CloseTable -> menutup meja dan mencatat pesanan ke riwayat. The payment method
// comes from ValidatePaymentRequest.
func (pc *PaymentController) CloseTable(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	closed, err := pc.Bar.CloseTable(id, c.GetString("payment_method"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventTableClosed, gin.H{
		"order": closed,
		"stats": pc.Bar.DailyStats(),
	})
	utils.Info().Printf("Table %d closed: order %s, %s via %s",
		id, closed.OrderID, utils.FormatCurrency(closed.Total), closed.PaymentMethod)
	utils.RespondJSON(c, http.StatusOK, "Table closed", closed)
}
