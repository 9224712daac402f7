package services

import (
	"time"

	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
)

// Expenses returns the ledger in insertion order.
func (b *Bar) Expenses() []models.Expense {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Expense{}, b.state.Expenses...)
}

// ExpensesBetween returns expenses dated within [start, end].
func (b *Bar) ExpensesBetween(start, end string) []models.Expense {
	now := b.clock()
	startKey, endKey := utils.ToDateKey(start, now), utils.ToDateKey(end, now)

	b.mu.RLock()
	defer b.mu.RUnlock()
	return filterExpenses(b.state.Expenses, startKey, endKey)
}

// AddExpense normalizes input and appends it to the ledger.
func (b *Bar) AddExpense(in models.ExpenseInput) models.Expense {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock()
	createdAt := now
	for indexOfExpense(b.state.Expenses, createdAt.Format(models.ISOMillis)) >= 0 {
		createdAt = createdAt.Add(time.Millisecond)
	}

	exp := models.Expense{
		ID:            createdAt.Format(models.ISOMillis),
		Category:      models.DefaultExpenseCategory,
		Value:         utils.ParseAmount(in.Value),
		Date:          utils.DateKey(now),
		PaymentMethod: models.DefaultPaymentMethod,
		CreatedAt:     createdAt,
	}
	if in.Description != nil {
		exp.Description = *in.Description
	}
	if in.Category != nil && *in.Category != "" {
		exp.Category = *in.Category
	}
	if in.Date != nil && *in.Date != "" {
		exp.Date = utils.ToDateKey(*in.Date, now)
	}
	if in.PaymentMethod != nil && *in.PaymentMethod != "" {
		exp.PaymentMethod = *in.PaymentMethod
	}

	next := make([]models.Expense, 0, len(b.state.Expenses)+1)
	next = append(next, b.state.Expenses...)
	next = append(next, exp)
	b.commitExpenses(next)
	return exp
}

// UpdateExpense applies only the provided fields, normalizing value and date.
func (b *Bar) UpdateExpense(id string, in models.ExpenseInput) (models.Expense, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfExpense(b.state.Expenses, id)
	if idx < 0 {
		return models.Expense{}, ErrExpenseNotFound
	}
	exp := b.state.Expenses[idx]
	if in.Description != nil {
		exp.Description = *in.Description
	}
	if in.Category != nil {
		exp.Category = *in.Category
	}
	if in.Value != nil {
		exp.Value = utils.ParseAmount(in.Value)
	}
	if in.Date != nil && *in.Date != "" {
		exp.Date = utils.ToDateKey(*in.Date, b.clock())
	}
	if in.PaymentMethod != nil {
		exp.PaymentMethod = *in.PaymentMethod
	}

	next := make([]models.Expense, len(b.state.Expenses))
	copy(next, b.state.Expenses)
	next[idx] = exp
	b.commitExpenses(next)
	return exp, nil
}

func (b *Bar) DeleteExpense(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfExpense(b.state.Expenses, id)
	if idx < 0 {
		return ErrExpenseNotFound
	}
	next := make([]models.Expense, 0, len(b.state.Expenses)-1)
	next = append(next, b.state.Expenses[:idx]...)
	next = append(next, b.state.Expenses[idx+1:]...)
	b.commitExpenses(next)
	return nil
}

func (b *Bar) commitExpenses(expenses []models.Expense) {
	b.state.Expenses = expenses
	b.persist(database.KeyExpenses, expenses)
}

func indexOfExpense(expenses []models.Expense, id string) int {
	for i, e := range expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func filterExpenses(expenses []models.Expense, startKey, endKey string) []models.Expense {
	out := make([]models.Expense, 0)
	for _, e := range expenses {
		if e.Date >= startKey && e.Date <= endKey {
			out = append(out, e)
		}
	}
	return out
}
