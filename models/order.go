package models

import (
	"fmt"
	"time"
)

// OrderStatus -> status pipeline dapur
type OrderStatus string

const (
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
)

// ISOMillis is the timestamp layout used inside order identifiers.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// Order is the active tab of one table between opening and closing.
type Order struct {
	OrderID    string      `json:"orderId"`
	Items      []OrderLine `json:"items"`
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total"`
	OpenedAt   time.Time   `json:"openedAt"`
	ReadyAt    *time.Time  `json:"readyAt,omitempty"`
	PickedUpAt *time.Time  `json:"pickedUpAt,omitempty"`
}

// NewOrderID derives the identifier of an order opened on tableID at openedAt.
func NewOrderID(tableID int, openedAt time.Time) string {
	return fmt.Sprintf("%d-%s", tableID, openedAt.UTC().Format(ISOMillis))
}

// CalcTotal returns the sum of price x quantity over lines.
func CalcTotal(lines []OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	o.Items = append([]OrderLine(nil), o.Items...)
	if o.Items == nil {
		o.Items = []OrderLine{}
	}
	if o.ReadyAt != nil {
		t := *o.ReadyAt
		o.ReadyAt = &t
	}
	if o.PickedUpAt != nil {
		t := *o.PickedUpAt
		o.PickedUpAt = &t
	}
	return o
}
