package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type ReceiptController struct {
	Bar *services.Bar
}

func NewReceiptController(bar *services.Bar) *ReceiptController {
	return &ReceiptController{Bar: bar}
}

// GetHistory -> riwayat pesanan yang sudah ditutup, ?start=&end= opsional
func (rc *ReceiptController) GetHistory(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		utils.RespondJSON(c, http.StatusOK, "Order history", rc.Bar.History())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history in period", rc.Bar.HistoryBetween(start, end))
}

// GetClosedOrder -> detail satu pesanan
func (rc *ReceiptController) GetClosedOrder(c *gin.Context) {
	order, err := rc.Bar.ClosedOrder(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GenerateReceipt membuat struk PDF
func (rc *ReceiptController) GenerateReceipt(c *gin.Context) {
	order, err := rc.Bar.ClosedOrder(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteReceiptPDF(&buf, order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondFile(c, "application/pdf", fmt.Sprintf("recibo-%d.pdf", order.TableID), true, buf.Bytes())
}
