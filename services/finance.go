package services

import (
	"time"

	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
)

// MaxSeriesDays is the longest range Bar.DailySeries accepts (about ten years).
const MaxSeriesDays = 3660

// DailySummary aggregates one calendar day.
type DailySummary struct {
	Date            string             `json:"date"`
	Revenue         float64            `json:"revenue"`
	Count           int                `json:"count"`
	Avg             float64            `json:"avg"`
	ExpensesTotal   float64            `json:"expensesTotal"`
	NetTotal        float64            `json:"netTotal"`
	OpenTablesTotal float64            `json:"openTablesTotal"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
}

// RangeSummary aggregates an inclusive range of days. Open tables are not part
// of it because they only have a meaning for "now".
type RangeSummary struct {
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	Revenue         float64            `json:"revenue"`
	Count           int                `json:"count"`
	Avg             float64            `json:"avg"`
	ExpensesTotal   float64            `json:"expensesTotal"`
	NetTotal        float64            `json:"netTotal"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
}

type totals struct {
	revenue         float64
	count           int
	avg             float64
	expensesTotal   float64
	netTotal        float64
	byPaymentMethod map[string]float64
}

func summarize(orders []models.ClosedOrder, expenses []models.Expense) totals {
	t := totals{byPaymentMethod: make(map[string]float64)}
	for _, o := range orders {
		t.revenue += o.Total
		t.byPaymentMethod[o.PaymentBucket()] += o.Total
	}
	t.count = len(orders)
	if t.count > 0 {
		t.avg = t.revenue / float64(t.count)
	}
	for _, e := range expenses {
		t.expensesTotal += e.Value
	}
	t.netTotal = t.revenue - t.expensesTotal
	return t
}

// OpenTablesTotal sums the orders of tables that are not free.
func OpenTablesTotal(tables []models.Table) float64 {
	var total float64
	for _, t := range tables {
		if t.CurrentOrder == nil || t.Status == models.TableFree {
			continue
		}
		total += t.CurrentOrder.Total
	}
	return total
}

// SummaryForDate aggregates orders closed and expenses dated on dayKey.
func SummaryForDate(history []models.ClosedOrder, expenses []models.Expense, tables []models.Table, dayKey string) DailySummary {
	t := summarize(filterClosed(history, dayKey, dayKey), filterExpenses(expenses, dayKey, dayKey))
	return DailySummary{
		Date:            dayKey,
		Revenue:         t.revenue,
		Count:           t.count,
		Avg:             t.avg,
		ExpensesTotal:   t.expensesTotal,
		NetTotal:        t.netTotal,
		OpenTablesTotal: OpenTablesTotal(tables),
		ByPaymentMethod: t.byPaymentMethod,
	}
}

// SummaryForRange aggregates every day in [startKey, endKey]. Keys are compared
// as strings, which matches chronological order for normalized keys.
func SummaryForRange(history []models.ClosedOrder, expenses []models.Expense, startKey, endKey string) RangeSummary {
	t := summarize(filterClosed(history, startKey, endKey), filterExpenses(expenses, startKey, endKey))
	return RangeSummary{
		StartDate:       startKey,
		EndDate:         endKey,
		Revenue:         t.revenue,
		Count:           t.count,
		Avg:             t.avg,
		ExpensesTotal:   t.expensesTotal,
		NetTotal:        t.netTotal,
		ByPaymentMethod: t.byPaymentMethod,
	}
}

// DailySeries returns one DailySummary per calendar day from startKey to
// endKey inclusive. It is empty when start is after end or a key is invalid.
func DailySeries(history []models.ClosedOrder, expenses []models.Expense, tables []models.Table, startKey, endKey string) []DailySummary {
	series := make([]DailySummary, 0)
	start, err := utils.ParseDateKey(startKey)
	if err != nil {
		return series
	}
	end, err := utils.ParseDateKey(endKey)
	if err != nil {
		return series
	}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		series = append(series, SummaryForDate(history, expenses, tables, utils.DateKey(day)))
	}
	return series
}

// FinancialSummaryForDate summarizes one day. Invalid input means today.
func (b *Bar) FinancialSummaryForDate(date string) DailySummary {
	key := utils.ToDateKey(date, b.clock())
	b.mu.RLock()
	defer b.mu.RUnlock()
	return SummaryForDate(b.state.History, b.state.Expenses, b.state.Tables, key)
}

// FinancialSummaryForRange summarizes [start, end].
func (b *Bar) FinancialSummaryForRange(start, end string) RangeSummary {
	now := b.clock()
	startKey, endKey := utils.ToDateKey(start, now), utils.ToDateKey(end, now)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return SummaryForRange(b.state.History, b.state.Expenses, startKey, endKey)
}

// DailySeries returns per-day summaries for [start, end]. Ranges longer than
// MaxSeriesDays are refused with ErrRangeTooLong.
func (b *Bar) DailySeries(start, end string) ([]DailySummary, error) {
	now := b.clock()
	startKey, endKey := utils.ToDateKey(start, now), utils.ToDateKey(end, now)
	if SeriesDays(startKey, endKey) > MaxSeriesDays {
		return nil, ErrRangeTooLong
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return DailySeries(b.state.History, b.state.Expenses, b.state.Tables, startKey, endKey), nil
}

// SeriesDays counts the calendar days in [startKey, endKey]; 0 when the range
// is empty or a key is invalid.
func SeriesDays(startKey, endKey string) int {
	start, err := time.Parse(utils.DateKeyLayout, startKey)
	if err != nil {
		return 0
	}
	end, err := time.Parse(utils.DateKeyLayout, endKey)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DailyStats is today's summary, shown in the manager header.
func (b *Bar) DailyStats() DailySummary {
	return b.FinancialSummaryForDate("")
}
