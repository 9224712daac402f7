package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type OrderController struct {
	Bar *services.Bar
}

func NewOrderController(bar *services.Bar) *OrderController {
	return &OrderController{Bar: bar}
}

// GetKitchenOrders -> antrian dapur, pesanan terlama dulu
func (oc *OrderController) GetKitchenOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", oc.Bar.KitchenQueue())
}

// MarkReady -> dapur menandai pesanan siap
func (oc *OrderController) MarkReady(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	table, err := oc.Bar.MarkOrderReady(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventOrderReady, gin.H{"table": table})
	utils.Info().Printf("Order %s ready (table %d)", table.CurrentOrder.OrderID, table.ID)
	utils.RespondJSON(c, http.StatusOK, "Order ready", table)
}

// MarkPickedUp -> pelayan mengambil pesanan
func (oc *OrderController) MarkPickedUp(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	table, err := oc.Bar.MarkOrderPickedUp(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventOrderServed, gin.H{"table": table})
	utils.Info().Printf("Order %s served (table %d)", table.CurrentOrder.OrderID, table.ID)
	utils.RespondJSON(c, http.StatusOK, "Order picked up", table)
}

// GetDraft -> comanda yang belum dikirim
func (oc *OrderController) GetDraft(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	if _, found := oc.Bar.Table(id); !found {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Draft", oc.Bar.Draft(id))
}

// AddToDraft -> menambah item ke comanda
func (oc *OrderController) AddToDraft(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	var in lineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	line, err := toLine(oc.Bar, in)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			respondServiceError(c, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines, err := oc.Bar.AddToDraft(id, line)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	oc.broadcastDraft(id, lines)
	utils.RespondJSON(c, http.StatusOK, "Draft updated", lines)
}

func (oc *OrderController) RemoveDraftLine(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	lines, err := oc.Bar.RemoveDraftLine(id, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	oc.broadcastDraft(id, lines)
	utils.RespondJSON(c, http.StatusOK, "Draft updated", lines)
}

// SendDraft -> kirim comanda ke dapur
func (oc *OrderController) SendDraft(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	table, err := oc.Bar.SendDraft(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	oc.broadcastDraft(id, oc.Bar.Draft(id))
	kds.Broadcast(kds.EventOrderUpdate, gin.H{"table": table})
	utils.Info().Printf("Draft of table %d sent to kitchen", id)
	utils.RespondJSON(c, http.StatusOK, "Draft sent", table)
}

func (oc *OrderController) broadcastDraft(tableID int, lines interface{}) {
	kds.Broadcast(kds.EventDraftUpdate, gin.H{
		"table_id": tableID,
		"items":    lines,
	})
}
