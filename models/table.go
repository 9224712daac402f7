package models

// TableStatus adalah status siklus hidup meja
type TableStatus string

const (
	TableFree    TableStatus = "free"
	TableOpen    TableStatus = "open"
	TablePayment TableStatus = "payment"
)

// Table is a physical seating unit. CurrentOrder is nil while the table is free,
// except for an order left empty by item cancellation.
type Table struct {
	ID           int         `json:"id"`
	Status       TableStatus `json:"status"`
	CurrentOrder *Order      `json:"currentOrder"`
}

// HasOrder reports whether an order is attached to the table.
func (t Table) HasOrder() bool {
	return t.CurrentOrder != nil
}

// Clone returns a copy that shares no mutable state with t.
func (t Table) Clone() Table {
	if t.CurrentOrder != nil {
		o := t.CurrentOrder.Clone()
		t.CurrentOrder = &o
	}
	return t
}
