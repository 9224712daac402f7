package services

import "errors"

// Each error explains why a call left the state unchanged.
var (
	ErrInvalidTableID   = errors.New("table id must be a positive number")
	ErrTableExists      = errors.New("table already exists")
	ErrTableNotFound    = errors.New("table not found")
	ErrTableBusy        = errors.New("table is not free")
	ErrNoOrder          = errors.New("table has no open order")
	ErrItemIndex        = errors.New("order item index out of range")
	ErrTableInPayment   = errors.New("table was sent to payment; items can no longer be added")
	ErrNoItems          = errors.New("no items to add")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrEmptyDraft       = errors.New("draft is empty")
	ErrOrderNotFound    = errors.New("closed order not found")
	ErrRangeTooLong     = errors.New("date range is too long")
)
