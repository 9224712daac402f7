package services

import (
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
)

// History returns every closed order in closing sequence.
func (b *Bar) History() []models.ClosedOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneHistory(b.state.History)
}

// HistoryBetween returns orders closed on days within [start, end].
func (b *Bar) HistoryBetween(start, end string) []models.ClosedOrder {
	now := b.clock()
	startKey, endKey := utils.ToDateKey(start, now), utils.ToDateKey(end, now)

	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneHistory(filterClosed(b.state.History, startKey, endKey))
}

// ClosedOrder looks a history entry up by order id.
func (b *Bar) ClosedOrder(orderID string) (models.ClosedOrder, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	idx := indexOfClosed(b.state.History, orderID)
	if idx < 0 {
		return models.ClosedOrder{}, ErrOrderNotFound
	}
	return cloneHistory(b.state.History[idx : idx+1])[0], nil
}

func indexOfClosed(history []models.ClosedOrder, orderID string) int {
	for i, h := range history {
		if h.OrderID == orderID {
			return i
		}
	}
	return -1
}

func filterClosed(history []models.ClosedOrder, startKey, endKey string) []models.ClosedOrder {
	out := make([]models.ClosedOrder, 0)
	for _, h := range history {
		key := utils.DateKey(h.ClosedAt)
		if key >= startKey && key <= endKey {
			out = append(out, h)
		}
	}
	return out
}
