package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-app/database"
	"github.com/yeremiapane/bar-app/models"
)

func TestAddToDraftMergesByMenuItem(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)

	beer, err := bar.LineFromMenu("1", 1)
	require.NoError(t, err)
	fries, err := bar.LineFromMenu("2", 2)
	require.NoError(t, err)

	_, err = bar.AddToDraft(1, beer)
	require.NoError(t, err)
	_, err = bar.AddToDraft(1, fries)
	require.NoError(t, err)
	lines, err := bar.AddToDraft(1, beer)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, lines, bar.Draft(1))
}

func TestAddToDraftMergesCustomLinesByNameAndPrice(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)

	_, err = bar.AddToDraft(1, line("Dose", 8, 1))
	require.NoError(t, err)
	_, err = bar.AddToDraft(1, line("Dose", 9, 1))
	require.NoError(t, err)
	lines, err := bar.AddToDraft(1, line("Dose", 8, 3))
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddToDraftUnknownTable(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.AddToDraft(3, line("Dose", 8, 1))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestRemoveDraftLine(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddToDraft(1, line("A", 1, 1))
	require.NoError(t, err)
	_, err = bar.AddToDraft(1, line("B", 2, 1))
	require.NoError(t, err)

	_, err = bar.RemoveDraftLine(1, 5)
	assert.ErrorIs(t, err, ErrItemIndex)

	lines, err := bar.RemoveDraftLine(1, 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "B", lines[0].Name)

	lines, err = bar.RemoveDraftLine(1, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NotContains(t, bar.Snapshot().Drafts, 1)
}

func TestSendDraft(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)

	_, err = bar.SendDraft(1)
	assert.ErrorIs(t, err, ErrEmptyDraft)

	_, err = bar.AddToDraft(1, line("Cerveja", 10, 2))
	require.NoError(t, err)
	table, err := bar.SendDraft(1)
	require.NoError(t, err)

	assert.Equal(t, models.TableOpen, table.Status)
	assert.Equal(t, 20.0, table.CurrentOrder.Total)
	assert.Empty(t, bar.Draft(1))
}

func TestSendDraftKeepsDraftWhenRejected(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{line("Cerveja", 10, 1)})
	require.NoError(t, err)
	_, err = bar.SendTableToPayment(1)
	require.NoError(t, err)

	_, err = bar.AddToDraft(1, line("Água", 4, 1))
	require.NoError(t, err)
	_, err = bar.SendDraft(1)
	assert.ErrorIs(t, err, ErrTableInPayment)
	assert.Len(t, bar.Draft(1), 1)
}

// hookPersister runs onTables the first time the tables collection is written.
type hookPersister struct {
	once     sync.Once
	onTables func()
}

func (p *hookPersister) Persist(key string, value interface{}) {
	if key == database.KeyTables && p.onTables != nil {
		p.once.Do(p.onTables)
	}
}

func TestSendDraftDoesNotLoseLineAddedMeanwhile(t *testing.T) {
	clock := newTestClock()
	hook := &hookPersister{}
	bar := NewBar(EmptyState(), hook, WithClock(clock.Now))
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddToDraft(1, line("Cerveja", 10, 1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	hook.onTables = func() {
		wg.Add(1)
		done := make(chan struct{})
		go func() {
			defer wg.Done()
			defer close(done)
			_, err := bar.AddToDraft(1, line("Água", 4, 1))
			assert.NoError(t, err)
		}()
		// give the other request a chance to run while the send is in flight
		select {
		case <-done:
		case <-time.After(20 * time.Millisecond):
		}
	}

	table, err := bar.SendDraft(1)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, table.CurrentOrder.Items, 1)
	assert.Equal(t, "Cerveja", table.CurrentOrder.Items[0].Name)
	draft := bar.Draft(1)
	require.Len(t, draft, 1)
	assert.Equal(t, "Água", draft[0].Name)
}

func TestConcurrentDraftAndSendKeepEveryLine(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)

	const adds = 200
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := bar.AddToDraft(1, line("Cerveja", 10, 1))
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, _ = bar.SendDraft(1)
		}()
	}
	wg.Wait()

	qty := 0
	table, ok := bar.Table(1)
	require.True(t, ok)
	if table.CurrentOrder != nil {
		for _, l := range table.CurrentOrder.Items {
			qty += l.Quantity
		}
	}
	for _, l := range bar.Draft(1) {
		qty += l.Quantity
	}
	assert.Equal(t, adds, qty)
}
