package models

import "time"

// ClosedOrder is the history entry written when a table is closed. It is never
// modified after it is appended.
type ClosedOrder struct {
	OrderID       string      `json:"orderId"`
	TableID       int         `json:"tableId"`
	Total         float64     `json:"total"`
	Items         []OrderLine `json:"items"`
	OpenedAt      time.Time   `json:"openedAt"`
	ClosedAt      time.Time   `json:"closedAt"`
	PaymentMethod string      `json:"paymentMethod"`
}

// PaymentBucket returns the method used to group this entry in summaries.
func (c ClosedOrder) PaymentBucket() string {
	if c.PaymentMethod == "" {
		return PaymentUnassigned
	}
	return c.PaymentMethod
}
