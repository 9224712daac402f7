package Controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/services"
)

func TestFinanceEndpoints(t *testing.T) {
	r, bar := setupRouterForTest(t)
	for id := 1; id <= 3; id++ {
		_, err := bar.CreateTable(id)
		require.NoError(t, err)
	}
	_, err := bar.AddItemsToTable(1, []models.OrderLine{{Name: "A", Price: 10, Quantity: 1}})
	require.NoError(t, err)
	_, err = bar.CloseTable(1, models.PaymentPix)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(2, []models.OrderLine{{Name: "B", Price: 15, Quantity: 1}})
	require.NoError(t, err)
	_, err = bar.CloseTable(2, models.PaymentPix)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(3, []models.OrderLine{{Name: "C", Price: 8, Quantity: 1}})
	require.NoError(t, err)
	bar.AddExpense(models.ExpenseInput{Value: 5.0})

	manager := tokenFor(t, "manager")

	var daily services.DailySummary
	w := doRequest(t, r, "GET", "/finance/daily", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &daily)
	assert.Equal(t, "2024-05-10", daily.Date)
	assert.Equal(t, 25.0, daily.Revenue)
	assert.Equal(t, 2, daily.Count)
	assert.Equal(t, 12.5, daily.Avg)
	assert.Equal(t, 20.0, daily.NetTotal)
	assert.Equal(t, 8.0, daily.OpenTablesTotal)
	assert.Equal(t, 25.0, daily.ByPaymentMethod["pix"])

	w = doRequest(t, r, "GET", "/finance/summary?date=2024-05-09", manager, nil)
	decode(t, w, &daily)
	assert.Equal(t, 0, daily.Count)
	assert.Equal(t, 0.0, daily.Avg)

	var rng services.RangeSummary
	w = doRequest(t, r, "GET", "/finance/range?start=2024-05-01&end=2024-05-31", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &rng)
	assert.Equal(t, 25.0, rng.Revenue)
	assert.Equal(t, 5.0, rng.ExpensesTotal)

	var series []services.DailySummary
	w = doRequest(t, r, "GET", "/finance/series?start=2024-05-08&end=2024-05-10", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &series)
	require.Len(t, series, 3)
	assert.Equal(t, 25.0, series[2].Revenue)

	w = doRequest(t, r, "GET", "/finance/daily", tokenFor(t, "attendant"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFinanceSeriesRejectsOversizedRange(t *testing.T) {
	r, _ := setupRouterForTest(t)
	manager := tokenFor(t, "manager")

	w := doRequest(t, r, "GET", "/finance/series?start=2000-01-01&end=2010-01-07", manager, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{
		"/finance/series?start=2000-01-01&end=2010-01-08",
		"/finance/export.csv?start=2000-01-01&end=2020-12-31",
		"/finance/export.pdf?start=2000-01-01&end=2020-12-31",
	} {
		w = doRequest(t, r, "GET", path, manager, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestFinanceExports(t *testing.T) {
	r, bar := setupRouterForTest(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{{Name: "A", Price: 10, Quantity: 1}})
	require.NoError(t, err)
	_, err = bar.CloseTable(1, models.PaymentCash)
	require.NoError(t, err)
	manager := tokenFor(t, "manager")

	w := doRequest(t, r, "GET", "/finance/export.csv?start=2024-05-09&end=2024-05-10", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "2024-05-10,1,10.00")
	assert.Equal(t, `attachment; filename="financeiro-2024-05-09-2024-05-10.csv"`, w.Header().Get("Content-Disposition"))

	w = doRequest(t, r, "GET", "/finance/export.pdf", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestHistoryAndReceipt(t *testing.T) {
	r, bar := setupRouterForTest(t)
	_, err := bar.CreateTable(4)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(4, []models.OrderLine{{Name: "Porção de Batata Frita", Price: 29.9, Quantity: 1}})
	require.NoError(t, err)
	closed, err := bar.CloseTable(4, models.PaymentCard)
	require.NoError(t, err)
	manager := tokenFor(t, "manager")

	var history []models.ClosedOrder
	w := doRequest(t, r, "GET", "/history", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &history)
	require.Len(t, history, 1)

	w = doRequest(t, r, "GET", "/history?start=2024-05-11&end=2024-05-12", manager, nil)
	decode(t, w, &history)
	assert.Empty(t, history)

	var got models.ClosedOrder
	w = doRequest(t, r, "GET", "/history/"+closed.OrderID, manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &got)
	assert.Equal(t, closed.OrderID, got.OrderID)

	w = doRequest(t, r, "GET", "/history/"+closed.OrderID+"/receipt", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = doRequest(t, r, "GET", "/history/unknown/receipt", manager, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
