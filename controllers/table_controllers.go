package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type TableController struct {
	Bar *services.Bar
}

func NewTableController(bar *services.Bar) *TableController {
	return &TableController{Bar: bar}
}

// lineInput is an order line as sent by the attendant screen. Either MenuItemID
// refers to a catalog item or Name and Price describe a custom line.
type lineInput struct {
	MenuItemID interface{} `json:"menuItemId"`
	Name       string      `json:"name"`
	Price      interface{} `json:"price"`
	Quantity   interface{} `json:"quantity"`
}

func (in lineInput) menuItemID() string {
	switch v := in.MenuItemID.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// toLine resolves the input against the catalog
func toLine(bar *services.Bar, in lineInput) (models.OrderLine, error) {
	qty := utils.ParseQuantity(in.Quantity)
	if id := in.menuItemID(); id != "" {
		return bar.LineFromMenu(id, qty)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.OrderLine{}, errors.New("item needs menuItemId or name")
	}
	return models.OrderLine{
		Name:     name,
		Price:    utils.ParseAmount(in.Price),
		Quantity: qty,
	}.Normalize(), nil
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		ID interface{} `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := services.ParseTableID(fmt.Sprint(req.ID))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Bar.CreateTable(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventTableCreate, gin.H{
		"table": table,
		"stats": tc.Bar.DailyStats(),
	})

	utils.Info().Printf("New table created: %d", table.ID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Bar.Tables())
}

func (tc *TableController) GetTable(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	table, found := tc.Bar.Table(id)
	if !found {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetReadyTables -> meja dengan pesanan siap diantar
func (tc *TableController) GetReadyTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Ready tables", tc.Bar.ReadyTables())
}

// AddItems -> menambahkan item langsung ke pesanan meja
func (tc *TableController) AddItems(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Items []lineInput `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	for _, in := range req.Items {
		line, err := toLine(tc.Bar, in)
		if err != nil {
			if errors.Is(err, services.ErrMenuItemNotFound) {
				respondServiceError(c, err)
				return
			}
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		lines = append(lines, line)
	}

	table, err := tc.Bar.AddItemsToTable(id, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventOrderUpdate, gin.H{"table": table})
	utils.Info().Printf("Table %d: %d lines added, total %s", table.ID, len(lines), utils.FormatCurrency(table.CurrentOrder.Total))
	utils.RespondJSON(c, http.StatusOK, "Items added", table)
}

// CancelItem -> membatalkan satu baris pesanan
func (tc *TableController) CancelItem(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	table, err := tc.Bar.CancelItemFromTable(id, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventOrderUpdate, gin.H{"table": table})
	utils.Info().Printf("Table %d: item %d cancelled", id, index)
	utils.RespondJSON(c, http.StatusOK, "Item cancelled", table)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := tableIDParam(c)
	if !ok {
		return
	}

	if err := tc.Bar.DeleteTable(id); err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventTableDelete, gin.H{
		"table_id": id,
		"stats":    tc.Bar.DailyStats(),
	})

	utils.Info().Printf("Table deleted: %d", id)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", nil)
}
