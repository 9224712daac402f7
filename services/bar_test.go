package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// recordingPersister keeps the last value written per key
type recordingPersister struct {
	mu     sync.Mutex
	writes map[string]int
	last   map[string]interface{}
}

func newRecordingPersister() *recordingPersister {
	return &recordingPersister{writes: map[string]int{}, last: map[string]interface{}{}}
}

func (p *recordingPersister) Persist(key string, value interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes[key]++
	p.last[key] = value
}

func (p *recordingPersister) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes[key]
}

func newTestBar(t *testing.T) (*Bar, *testClock, *recordingPersister) {
	t.Helper()
	clock := newTestClock()
	persister := newRecordingPersister()
	return NewBar(EmptyState(), persister, WithClock(clock.Now)), clock, persister
}

func newTestStore(t *testing.T) *database.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	store := database.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func line(name string, price float64, qty int) models.OrderLine {
	return models.OrderLine{Name: name, Price: price, Quantity: qty}
}

func TestEmptyStateDefaults(t *testing.T) {
	st := EmptyState()
	assert.Len(t, st.Menu, 2)
	assert.Equal(t, "Cerveja 600ml", st.Menu[0].Name)
	assert.Empty(t, st.Tables)
	assert.Empty(t, st.History)
	assert.Empty(t, st.Expenses)
	assert.NotNil(t, st.Drafts)
}

func TestLoadStateFallsBackPerKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(database.KeyTables, []models.Table{{ID: 3, Status: models.TableFree}}))
	// corrupt history must not affect the other collections
	require.NoError(t, store.DB.Create(&models.StoreEntry{Key: database.KeyHistory, Value: "{not json"}).Error)

	st := LoadState(store)
	assert.Equal(t, models.DefaultMenu(), st.Menu)
	assert.Equal(t, []models.Table{{ID: 3, Status: models.TableFree}}, st.Tables)
	assert.Empty(t, st.History)
	assert.NotNil(t, st.History)
	assert.Empty(t, st.Expenses)
}

func TestLoadStateNormalizesTables(t *testing.T) {
	store := newTestStore(t)
	stored := []models.Table{
		{ID: 5, Status: models.TableOpen, CurrentOrder: &models.Order{
			OrderID: "5-x",
			Items:   []models.OrderLine{line("Cerveja", 10, 2)},
			Total:   999,
		}},
		{ID: 2},
		{ID: 5, Status: models.TableFree},
		{ID: -1},
	}
	require.NoError(t, store.Save(database.KeyTables, stored))

	st := LoadState(store)
	require.Len(t, st.Tables, 2)
	assert.Equal(t, 2, st.Tables[0].ID)
	assert.Equal(t, models.TableFree, st.Tables[0].Status)
	assert.Equal(t, 5, st.Tables[1].ID)
	assert.Equal(t, 20.0, st.Tables[1].CurrentOrder.Total)
}

func TestLoadStateResetsBusyTablesWithoutOrder(t *testing.T) {
	store := newTestStore(t)
	stored := []models.Table{
		{ID: 1, Status: models.TableOpen},
		{ID: 2, Status: models.TablePayment},
		{ID: 3, Status: models.TablePayment, CurrentOrder: &models.Order{
			OrderID: "3-x",
			Items:   []models.OrderLine{line("Cerveja", 10, 1)},
		}},
	}
	require.NoError(t, store.Save(database.KeyTables, stored))

	st := LoadState(store)
	require.Len(t, st.Tables, 3)
	assert.Equal(t, models.TableFree, st.Tables[0].Status)
	assert.Equal(t, models.TableFree, st.Tables[1].Status)
	assert.Equal(t, models.TablePayment, st.Tables[2].Status)
}

func TestLoadStateDropsOrphanDrafts(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(database.KeyTables, []models.Table{{ID: 1, Status: models.TableFree}}))
	require.NoError(t, store.Save(database.KeyDrafts, map[int][]models.OrderLine{
		1: {line("Cerveja", 10, 1)},
		9: {line("Batata", 30, 1)},
	}))

	st := LoadState(store)
	assert.Len(t, st.Drafts, 1)
	assert.Contains(t, st.Drafts, 1)
	assert.NotContains(t, st.Drafts, 9)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := newTestStore(t)
	clock := newTestClock()
	bar := NewBar(LoadState(store), SyncPersister{Store: store}, WithClock(clock.Now))

	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.CreateTable(2)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{line("Cerveja", 12.9, 2)})
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(2, []models.OrderLine{line("Batata", 29.9, 1)})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = bar.CloseTable(2, models.PaymentPix)
	require.NoError(t, err)
	bar.AddMenuItem(models.MenuItem{Name: "Caipirinha", Category: "Bebida", Price: 18})
	value := "45,50"
	bar.AddExpense(models.ExpenseInput{Description: &value, Value: value})
	_, err = bar.AddToDraft(1, line("Água", 4, 1))
	require.NoError(t, err)

	before := bar.Snapshot()
	after := LoadState(store)

	assert.Equal(t, before.Menu, after.Menu)
	assert.Equal(t, before.Tables, after.Tables)
	assert.Equal(t, before.History, after.History)
	assert.Equal(t, before.Expenses, after.Expenses)
	assert.Equal(t, before.Drafts, after.Drafts)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{line("Cerveja", 10, 1)})
	require.NoError(t, err)

	snap := bar.Snapshot()
	snap.Tables[0].CurrentOrder.Items[0].Quantity = 99
	snap.Tables[0].CurrentOrder.Total = 0

	table, ok := bar.Table(1)
	require.True(t, ok)
	assert.Equal(t, 1, table.CurrentOrder.Items[0].Quantity)
	assert.Equal(t, 10.0, table.CurrentOrder.Total)
}

func TestParseTableID(t *testing.T) {
	id, err := ParseTableID(" 7 ")
	assert.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseTableID(raw)
		assert.ErrorIs(t, err, ErrInvalidTableID, raw)
	}
}

func TestFlushAllPersistsEveryCollection(t *testing.T) {
	bar, _, persister := newTestBar(t)
	bar.FlushAll()
	for _, key := range []string{database.KeyMenu, database.KeyTables, database.KeyHistory, database.KeyExpenses, database.KeyDrafts} {
		assert.Equal(t, 1, persister.count(key), key)
	}
}
