package services

import (
	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
)

// Draft returns the pending lines of a table.
func (b *Bar) Draft(tableID int) []models.OrderLine {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.OrderLine{}, b.state.Drafts[tableID]...)
}

// AddToDraft adds line to the table's pending comanda. Lines of the same menu
// item (or, without an id, the same name and price) are merged by quantity.
func (b *Bar) AddToDraft(tableID int, line models.OrderLine) ([]models.OrderLine, error) {
	line = line.Normalize()

	b.mu.Lock()
	defer b.mu.Unlock()

	if indexOfTable(b.state.Tables, tableID) < 0 {
		return nil, ErrTableNotFound
	}

	lines := append([]models.OrderLine{}, b.state.Drafts[tableID]...)
	merged := false
	for i, l := range lines {
		if sameDraftItem(l, line) {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}

	drafts := cloneDrafts(b.state.Drafts)
	drafts[tableID] = lines
	b.commitDrafts(drafts)
	return append([]models.OrderLine{}, lines...), nil
}

// RemoveDraftLine drops one pending line.
func (b *Bar) RemoveDraftLine(tableID, index int) ([]models.OrderLine, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.state.Drafts[tableID]
	if index < 0 || index >= len(lines) {
		return nil, ErrItemIndex
	}
	next := make([]models.OrderLine, 0, len(lines)-1)
	next = append(next, lines[:index]...)
	next = append(next, lines[index+1:]...)

	drafts := cloneDrafts(b.state.Drafts)
	if len(next) == 0 {
		delete(drafts, tableID)
	} else {
		drafts[tableID] = next
	}
	b.commitDrafts(drafts)
	return append([]models.OrderLine{}, next...), nil
}

// SendDraft sends the pending lines to the kitchen. Reading the draft, adding
// the lines and clearing the draft happen under one lock; the draft is kept
// when the table refuses the items.
func (b *Bar) SendDraft(tableID int) (models.Table, error) {
	if tableID <= 0 {
		return models.Table{}, ErrInvalidTableID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.state.Drafts[tableID]
	if len(lines) == 0 {
		return models.Table{}, ErrEmptyDraft
	}
	table, err := b.addItemsLocked(tableID, lines)
	if err != nil {
		return models.Table{}, err
	}

	drafts := cloneDrafts(b.state.Drafts)
	delete(drafts, tableID)
	b.commitDrafts(drafts)
	return table, nil
}

func (b *Bar) commitDrafts(drafts map[int][]models.OrderLine) {
	b.state.Drafts = drafts
	b.persist(database.KeyDrafts, drafts)
}

func sameDraftItem(a, c models.OrderLine) bool {
	if a.MenuItemID != "" || c.MenuItemID != "" {
		return a.MenuItemID == c.MenuItemID
	}
	return a.Name == c.Name && a.Price == c.Price
}
