package models

import "time"

// DefaultExpenseCategory adalah kategori umum untuk pengeluaran tanpa kategori
const DefaultExpenseCategory = "Geral"

// Expense is a dated bar expense (supplies, gas, ingredients).
type Expense struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Value         float64   `json:"value"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ExpenseInput holds raw values as they arrive from a form. Value and Date are
// normalized by the ledger.
type ExpenseInput struct {
	Description   *string     `json:"description"`
	Category      *string     `json:"category"`
	Value         interface{} `json:"value"`
	Date          *string     `json:"date"`
	PaymentMethod *string     `json:"paymentMethod"`
}
