package services

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
)

// Persister receives every collection after it changes. Implementations must
// not return errors to the caller; failures are logged.
type Persister interface {
	Persist(key string, value interface{})
}

// State is the full set of collections owned by a Bar.
type State struct {
	Menu     []models.MenuItem
	Tables   []models.Table
	History  []models.ClosedOrder
	Expenses []models.Expense
	Drafts   map[int][]models.OrderLine
}

// EmptyState returns the defaults used when nothing is stored.
func EmptyState() State {
	return State{
		Menu:     models.DefaultMenu(),
		Tables:   []models.Table{},
		History:  []models.ClosedOrder{},
		Expenses: []models.Expense{},
		Drafts:   map[int][]models.OrderLine{},
	}
}

// LoadState reads every collection from store. Each one falls back to its
// default independently when it is missing or cannot be decoded.
func LoadState(store database.Store) State {
	st := EmptyState()

	var menu []models.MenuItem
	if loadCollection(store, database.KeyMenu, &menu) && menu != nil {
		st.Menu = menu
	}
	var tables []models.Table
	if loadCollection(store, database.KeyTables, &tables) && tables != nil {
		st.Tables = normalizeTables(tables)
	}
	var history []models.ClosedOrder
	if loadCollection(store, database.KeyHistory, &history) && history != nil {
		st.History = history
	}
	var expenses []models.Expense
	if loadCollection(store, database.KeyExpenses, &expenses) && expenses != nil {
		st.Expenses = expenses
	}
	var drafts map[int][]models.OrderLine
	if loadCollection(store, database.KeyDrafts, &drafts) && drafts != nil {
		st.Drafts = dropOrphanDrafts(drafts, st.Tables)
	}
	return st
}

func loadCollection(store database.Store, key string, dst interface{}) bool {
	err := store.Load(key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, database.ErrNotFound) {
		utils.Error().WithField("collection", key).Errorf("Error loading collection, using default: %v", err)
	}
	return false
}

// dropOrphanDrafts keeps only non-empty drafts of existing tables.
func dropOrphanDrafts(drafts map[int][]models.OrderLine, tables []models.Table) map[int][]models.OrderLine {
	out := make(map[int][]models.OrderLine, len(drafts))
	for id, lines := range drafts {
		if len(lines) == 0 || indexOfTable(tables, id) < 0 {
			continue
		}
		out[id] = lines
	}
	return out
}

// normalizeTables sorts tables and recomputes totals of stored orders. A busy
// table without an order is reset to free.
func normalizeTables(tables []models.Table) []models.Table {
	out := make([]models.Table, 0, len(tables))
	seen := make(map[int]bool, len(tables))
	for _, t := range tables {
		if t.ID <= 0 || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		t = t.Clone()
		if t.CurrentOrder != nil {
			t.CurrentOrder.Total = models.CalcTotal(t.CurrentOrder.Items)
		}
		if t.Status == "" || (t.Status != models.TableFree && t.CurrentOrder == nil) {
			t.Status = models.TableFree
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Option configures a Bar.
type Option func(*Bar)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		b.now = now
	}
}

// Bar owns menu, tables, history, expenses and drafts. Every mutation
// replaces whole collections under the lock, so readers never see a
// half-applied change.
type Bar struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	now       func() time.Time
}

func NewBar(state State, persister Persister, opts ...Option) *Bar {
	if state.Drafts == nil {
		state.Drafts = map[int][]models.OrderLine{}
	}
	b := &Bar{
		state:     state,
		persister: persister,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	openTablesGauge.Set(float64(countOpenTables(state.Tables)))
	return b
}

func (b *Bar) clock() time.Time {
	return b.now().UTC()
}

func (b *Bar) persist(key string, value interface{}) {
	if b.persister == nil {
		return
	}
	b.persister.Persist(key, value)
}

// Snapshot returns a deep copy of every collection.
func (b *Bar) Snapshot() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return State{
		Menu:     append([]models.MenuItem{}, b.state.Menu...),
		Tables:   cloneTables(b.state.Tables),
		History:  cloneHistory(b.state.History),
		Expenses: append([]models.Expense{}, b.state.Expenses...),
		Drafts:   cloneDrafts(b.state.Drafts),
	}
}

// FlushAll hands every collection to the persister. Used at startup so seeded
// and normalized collections reach the store.
func (b *Bar) FlushAll() {
	st := b.Snapshot()
	b.persist(database.KeyMenu, st.Menu)
	b.persist(database.KeyTables, st.Tables)
	b.persist(database.KeyHistory, st.History)
	b.persist(database.KeyExpenses, st.Expenses)
	b.persist(database.KeyDrafts, st.Drafts)
}

// ParseTableID converts a path or form value into a table id.
func ParseTableID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, ErrInvalidTableID
	}
	return id, nil
}

func cloneTables(tables []models.Table) []models.Table {
	out := make([]models.Table, len(tables))
	for i, t := range tables {
		out[i] = t.Clone()
	}
	return out
}

func cloneHistory(history []models.ClosedOrder) []models.ClosedOrder {
	out := make([]models.ClosedOrder, len(history))
	for i, h := range history {
		h.Items = append([]models.OrderLine{}, h.Items...)
		out[i] = h
	}
	return out
}

func cloneDrafts(drafts map[int][]models.OrderLine) map[int][]models.OrderLine {
	out := make(map[int][]models.OrderLine, len(drafts))
	for id, lines := range drafts {
		out[id] = append([]models.OrderLine{}, lines...)
	}
	return out
}
