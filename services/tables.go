package services

import (
	"sort"

	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
)

// Tables returns all tables sorted by id.
func (b *Bar) Tables() []models.Table {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneTables(b.state.Tables)
}

// Table returns one table by id.
func (b *Bar) Table(id int) (models.Table, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	idx := indexOfTable(b.state.Tables, id)
	if idx < 0 {
		return models.Table{}, false
	}
	return b.state.Tables[idx].Clone(), true
}

// CreateTable adds a free table keeping the list sorted by id.
func (b *Bar) CreateTable(id int) (models.Table, error) {
	if id <= 0 {
		return models.Table{}, ErrInvalidTableID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if indexOfTable(b.state.Tables, id) >= 0 {
		return models.Table{}, ErrTableExists
	}

	table := models.Table{ID: id, Status: models.TableFree}
	next := make([]models.Table, 0, len(b.state.Tables)+1)
	next = append(next, b.state.Tables...)
	next = append(next, table)
	sort.Slice(next, func(i, j int) bool { return next[i].ID < next[j].ID })

	b.commitTables(next)
	return table, nil
}

// DeleteTable removes a table that is free and has no order attached.
func (b *Bar) DeleteTable(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfTable(b.state.Tables, id)
	if idx < 0 {
		return ErrTableNotFound
	}
	target := b.state.Tables[idx]
	if target.Status != models.TableFree || target.HasOrder() {
		return ErrTableBusy
	}

	next := make([]models.Table, 0, len(b.state.Tables)-1)
	next = append(next, b.state.Tables[:idx]...)
	next = append(next, b.state.Tables[idx+1:]...)
	b.commitTables(next)

	if _, ok := b.state.Drafts[id]; ok {
		drafts := cloneDrafts(b.state.Drafts)
		delete(drafts, id)
		b.commitDrafts(drafts)
	}
	return nil
}

// AddItemsToTable appends lines to the table's order, opening one when needed.
// Lines are appended as given; merging is left to the draft.
func (b *Bar) AddItemsToTable(id int, lines []models.OrderLine) (models.Table, error) {
	if id <= 0 {
		return models.Table{}, ErrInvalidTableID
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addItemsLocked(id, lines)
}

// addItemsLocked is AddItemsToTable for callers already holding b.mu.
func (b *Bar) addItemsLocked(id int, lines []models.OrderLine) (models.Table, error) {
	if len(lines) == 0 {
		return models.Table{}, ErrNoItems
	}
	now := b.clock()
	opened := false

	table, err := b.updateTableLocked(id, func(t *models.Table) error {
		if t.Status == models.TablePayment {
			return ErrTableInPayment
		}
		// a free table can still carry an order emptied by cancellation
		if t.CurrentOrder == nil || (t.Status == models.TableFree && len(t.CurrentOrder.Items) == 0) {
			t.CurrentOrder = &models.Order{
				OrderID:  models.NewOrderID(t.ID, now),
				Items:    []models.OrderLine{},
				Status:   models.OrderPreparing,
				OpenedAt: now,
			}
			opened = true
		}
		for _, l := range lines {
			t.CurrentOrder.Items = append(t.CurrentOrder.Items, l.Normalize())
		}
		t.CurrentOrder.Total = models.CalcTotal(t.CurrentOrder.Items)
		t.Status = models.TableOpen
		return nil
	})
	if err == nil && opened {
		ordersOpenedTotal.Inc()
	}
	return table, err
}

// MarkOrderReady stamps the order as ready for pickup.
func (b *Bar) MarkOrderReady(id int) (models.Table, error) {
	now := b.clock()
	return b.updateTable(id, func(t *models.Table) error {
		if t.CurrentOrder == nil {
			return ErrNoOrder
		}
		t.CurrentOrder.Status = models.OrderReady
		t.CurrentOrder.ReadyAt = &now
		return nil
	})
}

// MarkOrderPickedUp stamps the order as served.
func (b *Bar) MarkOrderPickedUp(id int) (models.Table, error) {
	now := b.clock()
	return b.updateTable(id, func(t *models.Table) error {
		if t.CurrentOrder == nil {
			return ErrNoOrder
		}
		t.CurrentOrder.Status = models.OrderServed
		t.CurrentOrder.PickedUpAt = &now
		return nil
	})
}

// SendTableToPayment moves a table with an order to payment. The order status
// is left as is.
func (b *Bar) SendTableToPayment(id int) (models.Table, error) {
	return b.updateTable(id, func(t *models.Table) error {
		if t.CurrentOrder == nil {
			return ErrNoOrder
		}
		t.Status = models.TablePayment
		return nil
	})
}

// CancelItemFromTable removes the line at index. When the last line goes the
// table is freed; the emptied order stays attached.
func (b *Bar) CancelItemFromTable(id, index int) (models.Table, error) {
	return b.updateTable(id, func(t *models.Table) error {
		if t.CurrentOrder == nil {
			return ErrNoOrder
		}
		items := t.CurrentOrder.Items
		if index < 0 || index >= len(items) {
			return ErrItemIndex
		}
		next := make([]models.OrderLine, 0, len(items)-1)
		next = append(next, items[:index]...)
		next = append(next, items[index+1:]...)
		t.CurrentOrder.Items = next
		t.CurrentOrder.Total = models.CalcTotal(next)
		if len(next) == 0 {
			t.Status = models.TableFree
		}
		return nil
	})
}

// CloseTable moves the current order into history and frees the table. History
// and tables are replaced in the same critical section. Closing an order whose
// id is already in history, or one without items, only frees the table.
func (b *Bar) CloseTable(id int, paymentMethod string) (models.ClosedOrder, error) {
	if id <= 0 {
		return models.ClosedOrder{}, ErrInvalidTableID
	}
	now := b.clock()

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfTable(b.state.Tables, id)
	if idx < 0 {
		return models.ClosedOrder{}, ErrTableNotFound
	}
	target := b.state.Tables[idx]
	if target.CurrentOrder == nil {
		return models.ClosedOrder{}, ErrNoOrder
	}

	order := target.CurrentOrder
	orderID := order.OrderID
	if orderID == "" {
		orderID = models.NewOrderID(target.ID, order.OpenedAt)
	}
	closed := models.ClosedOrder{
		OrderID:       orderID,
		TableID:       target.ID,
		Total:         order.Total,
		Items:         append([]models.OrderLine{}, order.Items...),
		OpenedAt:      order.OpenedAt,
		ClosedAt:      now,
		PaymentMethod: models.PaymentMethodOrDefault(paymentMethod),
	}

	// an order emptied by cancellation is discarded, not recorded as a sale
	appended := false
	if len(order.Items) > 0 && indexOfClosed(b.state.History, orderID) < 0 {
		history := make([]models.ClosedOrder, 0, len(b.state.History)+1)
		history = append(history, b.state.History...)
		history = append(history, closed)
		b.state.History = history
		appended = true
	}

	tables := make([]models.Table, len(b.state.Tables))
	copy(tables, b.state.Tables)
	tables[idx] = models.Table{ID: target.ID, Status: models.TableFree}
	b.state.Tables = tables

	if appended {
		b.persist(database.KeyHistory, b.state.History)
	}
	b.persist(database.KeyTables, b.state.Tables)
	openTablesGauge.Set(float64(countOpenTables(b.state.Tables)))

	if appended {
		tablesClosedTotal.WithLabelValues(closed.PaymentMethod).Inc()
		revenueTotal.WithLabelValues(closed.PaymentMethod).Add(closed.Total)
	}
	return closed, nil
}

// KitchenTicket is an order the kitchen still has to deal with.
type KitchenTicket struct {
	TableID int          `json:"tableId"`
	Order   models.Order `json:"order"`
}

// KitchenQueue lists preparing and ready orders, oldest first.
func (b *Bar) KitchenQueue() []KitchenTicket {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tickets := make([]KitchenTicket, 0)
	for _, t := range b.state.Tables {
		if t.CurrentOrder == nil || len(t.CurrentOrder.Items) == 0 {
			continue
		}
		switch t.CurrentOrder.Status {
		case models.OrderPreparing, models.OrderReady:
			tickets = append(tickets, KitchenTicket{TableID: t.ID, Order: t.CurrentOrder.Clone()})
		}
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].Order.OpenedAt.Before(tickets[j].Order.OpenedAt)
	})
	return tickets
}

// ReadyTables lists tables whose order waits for pickup.
func (b *Bar) ReadyTables() []models.Table {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ready := make([]models.Table, 0)
	for _, t := range b.state.Tables {
		if t.CurrentOrder != nil && t.CurrentOrder.Status == models.OrderReady {
			ready = append(ready, t.Clone())
		}
	}
	return ready
}

// updateTable applies fn to a copy of the table and installs the result.
// When fn fails nothing is installed.
func (b *Bar) updateTable(id int, fn func(t *models.Table) error) (models.Table, error) {
	if id <= 0 {
		return models.Table{}, ErrInvalidTableID
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updateTableLocked(id, fn)
}

func (b *Bar) updateTableLocked(id int, fn func(t *models.Table) error) (models.Table, error) {
	idx := indexOfTable(b.state.Tables, id)
	if idx < 0 {
		return models.Table{}, ErrTableNotFound
	}
	t := b.state.Tables[idx].Clone()
	if err := fn(&t); err != nil {
		return models.Table{}, err
	}

	next := make([]models.Table, len(b.state.Tables))
	copy(next, b.state.Tables)
	next[idx] = t
	b.commitTables(next)
	return t.Clone(), nil
}

func (b *Bar) commitTables(tables []models.Table) {
	b.state.Tables = tables
	b.persist(database.KeyTables, tables)
	openTablesGauge.Set(float64(countOpenTables(tables)))
}

func indexOfTable(tables []models.Table, id int) int {
	for i, t := range tables {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func countOpenTables(tables []models.Table) int {
	n := 0
	for _, t := range tables {
		if t.Status != models.TableFree {
			n++
		}
	}
	return n
}
