package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type ExpenseController struct {
	Bar *services.Bar
}

func NewExpenseController(bar *services.Bar) *ExpenseController {
	return &ExpenseController{Bar: bar}
}

// GetAllExpenses -> semua pengeluaran, atau ?start=&end= untuk periode
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		utils.RespondJSON(c, http.StatusOK, "All expenses", ec.Bar.Expenses())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expenses in period", ec.Bar.ExpensesBetween(start, end))
}

// CreateExpense
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	in.Description = trimmed(in.Description)
	in.Category = trimmed(in.Category)

	exp := ec.Bar.AddExpense(in)

	kds.Broadcast(kds.EventExpenseUpdate, gin.H{"action": "create", "expense": exp})
	utils.Info().Printf("Expense recorded: %s %s (%s)", exp.Category, utils.FormatCurrency(exp.Value), exp.Date)
	utils.RespondJSON(c, http.StatusCreated, "Expense recorded", exp)
}

// UpdateExpense
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		in.Category = nil
	}

	exp, err := ec.Bar.UpdateExpense(c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventExpenseUpdate, gin.H{"action": "update", "expense": exp})
	utils.RespondJSON(c, http.StatusOK, "Expense updated", exp)
}

// DeleteExpense
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if err := ec.Bar.DeleteExpense(id); err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventExpenseUpdate, gin.H{"action": "delete", "expense_id": id})
	utils.Info().Printf("Expense deleted: %s", id)
	utils.RespondJSON(c, http.StatusOK, "Expense deleted", nil)
}
