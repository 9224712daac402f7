package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
)

// Menu returns the catalog in insertion order.
func (b *Bar) Menu() []models.MenuItem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.MenuItem{}, b.state.Menu...)
}

// MenuItem looks an item up by id.
func (b *Bar) MenuItem(id string) (models.MenuItem, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	idx := indexOfMenuItem(b.state.Menu, id)
	if idx < 0 {
		return models.MenuItem{}, false
	}
	return b.state.Menu[idx], true
}

// SortedMenu returns items ordered by category then name. A non-empty category
// keeps only items of that category, compared case-insensitively.
func (b *Bar) SortedMenu(category string) []models.MenuItem {
	items := b.Menu()
	if category != "" {
		filtered := items[:0]
		for _, m := range items {
			if strings.EqualFold(m.Category, category) {
				filtered = append(filtered, m)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := strings.ToUpper(items[i].Category), strings.ToUpper(items[j].Category)
		if ci != cj {
			return ci < cj
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// MenuCategories derives the distinct upper-cased categories of the catalog,
// in order of first appearance.
func (b *Bar) MenuCategories() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, m := range b.state.Menu {
		cat := strings.ToUpper(m.Category)
		if seen[cat] {
			continue
		}
		seen[cat] = true
		categories = append(categories, cat)
	}
	return categories
}

// AddMenuItem stores item under a new id derived from the clock.
func (b *Bar) AddMenuItem(item models.MenuItem) models.MenuItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.clock().UnixMilli()
	for indexOfMenuItem(b.state.Menu, strconv.FormatInt(id, 10)) >= 0 {
		id++
	}
	item.ID = strconv.FormatInt(id, 10)
	if item.Price < 0 {
		item.Price = 0
	}

	next := make([]models.MenuItem, 0, len(b.state.Menu)+1)
	next = append(next, b.state.Menu...)
	next = append(next, item)
	b.commitMenu(next)
	return item
}

// UpdateMenuItem merges patch into the item; the id never changes.
func (b *Bar) UpdateMenuItem(id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfMenuItem(b.state.Menu, id)
	if idx < 0 {
		return models.MenuItem{}, ErrMenuItemNotFound
	}
	updated := patch.Apply(b.state.Menu[idx])
	updated.ID = id

	next := make([]models.MenuItem, len(b.state.Menu))
	copy(next, b.state.Menu)
	next[idx] = updated
	b.commitMenu(next)
	return updated, nil
}

// DeleteMenuItem removes the item. Order lines already copied from it stay.
func (b *Bar) DeleteMenuItem(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := indexOfMenuItem(b.state.Menu, id)
	if idx < 0 {
		return ErrMenuItemNotFound
	}
	next := make([]models.MenuItem, 0, len(b.state.Menu)-1)
	next = append(next, b.state.Menu[:idx]...)
	next = append(next, b.state.Menu[idx+1:]...)
	b.commitMenu(next)
	return nil
}

// LineFromMenu builds an order line snapshot of a catalog item.
func (b *Bar) LineFromMenu(menuItemID string, quantity int) (models.OrderLine, error) {
	item, ok := b.MenuItem(menuItemID)
	if !ok {
		return models.OrderLine{}, ErrMenuItemNotFound
	}
	return models.OrderLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
	}.Normalize(), nil
}

func (b *Bar) commitMenu(menu []models.MenuItem) {
	b.state.Menu = menu
	b.persist(database.KeyMenu, menu)
}

func indexOfMenuItem(menu []models.MenuItem, id string) int {
	for i, m := range menu {
		if m.ID == id {
			return i
		}
	}
	return -1
}
